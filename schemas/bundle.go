// Package schemas embeds the RDAP object-class schema bundle (common
// definitions, domain, entity, nameserver, help) and compiles them together
// so cross-file $ref/$defs resolution works the same way it would against
// schemas fetched over the network.
package schemas

import (
	"embed"
	"fmt"

	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/schema"
)

//go:embed *.json
var bundleFS embed.FS

var bundleFiles = []string{
	"/schemas/common.json",
	"/schemas/domain.json",
	"/schemas/entity.json",
	"/schemas/nameserver.json",
	"/schemas/help.json",
}

// Load reads and compiles the embedded schema bundle, keyed by the same
// $id values used for cross-file $ref resolution (e.g. "/schemas/domain.json").
func Load() (map[string]*schema.Schema, error) {
	raw := make(map[string][]byte, len(bundleFiles))
	for _, id := range bundleFiles {
		name := id[len("/schemas/"):]
		data, err := bundleFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("schemas: read %s: %w", name, err)
		}
		raw[id] = data
	}

	compiled, err := schema.NewCompiler().CompileBatch(raw)
	if err != nil {
		return nil, fmt.Errorf("schemas: compile bundle: %w", err)
	}
	return compiled, nil
}

// RootFor returns the compiled root schema to validate an RDAP response
// against, given which object class the query resolved to.
func RootFor(bundle map[string]*schema.Schema, objectClassID string) (*schema.Schema, error) {
	root, ok := bundle[objectClassID]
	if !ok {
		return nil, fmt.Errorf("schemas: no compiled schema for %s", objectClassID)
	}
	return root, nil
}

// IDForQueryType maps a query type to the schema bundle's $id for the
// response shape that query produces. NAMESERVERS (a search returning a
// collection) validates each member against the same nameserver shape as a
// single NAMESERVER lookup; there is no separate search-result envelope
// schema in the bundle.
func IDForQueryType(qt rdapcfg.QueryType) (string, error) {
	switch qt {
	case rdapcfg.QueryTypeHelp:
		return "/schemas/help.json", nil
	case rdapcfg.QueryTypeDomain:
		return "/schemas/domain.json", nil
	case rdapcfg.QueryTypeNameserver, rdapcfg.QueryTypeNameservers:
		return "/schemas/nameserver.json", nil
	case rdapcfg.QueryTypeEntity:
		return "/schemas/entity.json", nil
	default:
		return "", fmt.Errorf("schemas: unsupported query type %q", qt)
	}
}

// Command rdapconform runs the conformance engine against a captured RDAP
// response, proving the schema bundle and profile checks wire together end
// to end. It is not a production RDAP client: it reads one response body
// already on disk and reports what the engine found.
//
// Usage:
//
//	rdapconform -query <query-uri> -response <path-to-json>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rdapval/conformance/internal/engine"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/schemas"
)

var (
	queryURI     = flag.String("query", "", "RDAP query URI the response was fetched for")
	responsePath = flag.String("response", "", "path to the captured RDAP JSON response body")
)

func main() {
	flag.Parse()

	if *queryURI == "" || *responsePath == "" {
		fmt.Fprintln(os.Stderr, "rdapconform: -query and -response are both required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*queryURI, *responsePath); err != nil {
		fmt.Fprintf(os.Stderr, "rdapconform: %v\n", err)
		os.Exit(1)
	}
}

func run(queryURI, responsePath string) error {
	cfg, err := rdapcfg.New(queryURI)
	if err != nil {
		return fmt.Errorf("parsing query URI: %w", err)
	}

	body, err := os.ReadFile(responsePath)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	bundle, err := schemas.Load()
	if err != nil {
		return fmt.Errorf("loading schema bundle: %w", err)
	}
	schemaID, err := schemas.IDForQueryType(cfg.QueryType)
	if err != nil {
		return err
	}
	root, err := schemas.RootFor(bundle, schemaID)
	if err != nil {
		return err
	}

	e, err := engine.New(root)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	acc := e.Validate(context.Background(), body, cfg, nil)
	report(acc)
	return nil
}

func report(acc *result.Accumulator) {
	results := acc.Results()
	if len(results) == 0 {
		fmt.Println("no conformance findings")
		return
	}
	for _, r := range results {
		fmt.Printf("%d\t%s\t%s\n", r.Code, r.Value, r.Message)
	}
}

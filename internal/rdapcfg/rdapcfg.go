// Package rdapcfg derives the run's configuration value object: the query
// URI under test and the RDAP query type it implies, the one piece of
// external configuration every profile check gates on.
package rdapcfg

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnsupportedQueryPath is returned by New when the query URI's path does
// not match any of the five RDAP query path conventions.
var ErrUnsupportedQueryPath = errors.New("query URI does not match a supported RDAP query path")

// QueryType is the RDAP query kind derived from the query URI's first path
// segment.
type QueryType string

const (
	QueryTypeHelp        QueryType = "HELP"
	QueryTypeDomain      QueryType = "DOMAIN"
	QueryTypeNameserver  QueryType = "NAMESERVER"
	QueryTypeNameservers QueryType = "NAMESERVERS"
	QueryTypeEntity      QueryType = "ENTITY"
)

// Config is the configuration value object every profile check receives:
// the query URI and its derived query type.
type Config struct {
	QueryURI  *url.URL
	QueryType QueryType
}

// New parses queryURI and classifies it into a QueryType, per the RDAP
// path conventions (/help, /domain/{name}, /nameserver/{name},
// /nameservers, /entity/{handle}).
func New(queryURI string) (*Config, error) {
	u, err := url.Parse(queryURI)
	if err != nil {
		return nil, fmt.Errorf("rdapcfg: parsing query URI: %w", err)
	}
	qt, err := classify(u)
	if err != nil {
		return nil, err
	}
	return &Config{QueryURI: u, QueryType: qt}, nil
}

func classify(u *url.URL) (QueryType, error) {
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedQueryPath, u.Path)
	}
	switch strings.ToLower(segments[0]) {
	case "help":
		return QueryTypeHelp, nil
	case "domain":
		return QueryTypeDomain, nil
	case "nameserver":
		return QueryTypeNameserver, nil
	case "nameservers":
		return QueryTypeNameservers, nil
	case "entity":
		return QueryTypeEntity, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedQueryPath, u.Path)
	}
}

// RegistrableLabel returns the last path segment of the query URI, the
// domain or nameserver label a DOMAIN/NAMESERVER query names.
func (c *Config) RegistrableLabel() string {
	segments := strings.Split(strings.Trim(c.QueryURI.Path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// IsALabel reports whether label is (or contains, as a dot-separated DNS
// name) an IDNA ACE-encoded component.
func IsALabel(label string) bool {
	for _, part := range strings.Split(label, ".") {
		if strings.HasPrefix(strings.ToLower(part), "xn--") {
			return true
		}
	}
	return false
}

// IsULabel reports whether label contains a non-ASCII code point, i.e. is
// a native Unicode (U-label) DNS name rather than an ASCII one.
func IsULabel(label string) bool {
	for _, r := range label {
		if r > 0x7F {
			return true
		}
	}
	return false
}

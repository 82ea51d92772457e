// Package dataset provides the frozen predicate tables profile checks
// consult: the EPP ROID registry and the IANA IPv4/IPv6 special-purpose
// address registries. Datasets are loaded once and never mutated; the
// engine does not own their refresh.
package dataset

import (
	"embed"
	"net"

	"github.com/goccy/go-yaml"
)

//go:embed fixtures/registries.yaml
var fixturesFS embed.FS

const (
	EPPROID            = "eppROID"
	IPv4SpecialPurpose = "ipv4SpecialPurpose"
	IPv6SpecialPurpose = "ipv6SpecialPurpose"
)

// Table is a frozen predicate oracle: IsInvalid reports whether value
// should be rejected by whatever rule the table encodes.
type Table interface {
	IsInvalid(value string) bool
}

// Service resolves named dataset tables by the same names profile checks
// reference in their doValidate logic.
type Service struct {
	tables map[string]Table
}

// Get returns the table registered under name, or false if none was loaded.
func (s *Service) Get(name string) (Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

type registryFixture struct {
	EPPRoids           []string `yaml:"eppRoids"`
	IPv4SpecialPurpose []string `yaml:"ipv4SpecialPurpose"`
	IPv6SpecialPurpose []string `yaml:"ipv6SpecialPurpose"`
}

// Load parses the bundled registries fixture into a Service. It returns an
// error only for a malformed fixture or an unparsable CIDR range — both
// fixture-authoring bugs, never a condition callers work around at
// runtime.
func Load() (*Service, error) {
	raw, err := fixturesFS.ReadFile("fixtures/registries.yaml")
	if err != nil {
		return nil, err
	}

	var fixture registryFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return nil, err
	}

	ipv4, err := newCIDRSet(fixture.IPv4SpecialPurpose)
	if err != nil {
		return nil, err
	}
	ipv6, err := newCIDRSet(fixture.IPv6SpecialPurpose)
	if err != nil {
		return nil, err
	}

	return &Service{tables: map[string]Table{
		EPPROID:            newExactSet(fixture.EPPRoids),
		IPv4SpecialPurpose: ipv4,
		IPv6SpecialPurpose: ipv6,
	}}, nil
}

// exactSet backs the EPP ROID registry: a value is invalid when it is not
// a registered identifier.
type exactSet struct {
	known map[string]struct{}
}

func newExactSet(values []string) exactSet {
	known := make(map[string]struct{}, len(values))
	for _, v := range values {
		known[v] = struct{}{}
	}
	return exactSet{known: known}
}

func (s exactSet) IsInvalid(value string) bool {
	_, ok := s.known[value]
	return !ok
}

// cidrSet backs the IP special-purpose registries: a value is invalid when
// it falls inside one of the reserved ranges.
type cidrSet struct {
	ranges []*net.IPNet
}

func newCIDRSet(cidrs []string) (cidrSet, error) {
	ranges := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(c)
		if err != nil {
			return cidrSet{}, err
		}
		ranges = append(ranges, n)
	}
	return cidrSet{ranges: ranges}, nil
}

func (s cidrSet) IsInvalid(value string) bool {
	ip := net.ParseIP(value)
	if ip == nil {
		return false
	}
	for _, r := range s.ranges {
		if r.Contains(ip) {
			return true
		}
	}
	return false
}

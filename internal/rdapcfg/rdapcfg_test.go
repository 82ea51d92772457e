package rdapcfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapval/conformance/internal/rdapcfg"
)

func TestNewClassifiesQueryType(t *testing.T) {
	cases := map[string]rdapcfg.QueryType{
		"https://rdap.example/help":                        rdapcfg.QueryTypeHelp,
		"https://rdap.example/domain/example.com":           rdapcfg.QueryTypeDomain,
		"https://rdap.example/nameserver/ns1.example.com":   rdapcfg.QueryTypeNameserver,
		"https://rdap.example/nameservers?ip=192.0.2.0":     rdapcfg.QueryTypeNameservers,
		"https://rdap.example/entity/REG-1-EXAMPLE":         rdapcfg.QueryTypeEntity,
	}
	for uri, want := range cases {
		cfg, err := rdapcfg.New(uri)
		require.NoError(t, err, uri)
		assert.Equal(t, want, cfg.QueryType, uri)
	}
}

func TestNewRejectsUnsupportedPath(t *testing.T) {
	_, err := rdapcfg.New("https://rdap.example/autnum/64500")
	assert.ErrorIs(t, err, rdapcfg.ErrUnsupportedQueryPath)
}

func TestLabelClassification(t *testing.T) {
	cfg, err := rdapcfg.New("http://example/domain/test.xn--viagnie-eya.example")
	require.NoError(t, err)
	label := cfg.RegistrableLabel()
	assert.True(t, rdapcfg.IsALabel(label))
	assert.False(t, rdapcfg.IsULabel(label))

	cfg2, err := rdapcfg.New("http://example/domain/tést.example")
	require.NoError(t, err)
	assert.True(t, rdapcfg.IsULabel(cfg2.RegistrableLabel()))
}

package checks_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapval/conformance/internal/dataset"
	"github.com/rdapval/conformance/internal/httpcontext"
	"github.com/rdapval/conformance/internal/profile"
	"github.com/rdapval/conformance/internal/profile/checks"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/result"
)

func mustCatalog(t *testing.T) *result.Catalog {
	t.Helper()
	c, err := result.NewCatalog("en")
	require.NoError(t, err)
	return c
}

func mustDatasets(t *testing.T) *dataset.Service {
	t.Helper()
	svc, err := dataset.Load()
	require.NoError(t, err)
	return svc
}

func newContext(t *testing.T, document any, queryURI string) *profile.CheckContext {
	t.Helper()
	cfg, err := rdapcfg.New(queryURI)
	require.NoError(t, err)
	return &profile.CheckContext{
		Document:    document,
		Accumulator: result.NewAccumulator(),
		Config:      cfg,
		Datasets:    mustDatasets(t),
		Catalog:     mustCatalog(t),
	}
}

func TestHandleFormatBadPattern(t *testing.T) {
	doc := map[string]any{"handle": "not a handle!"}
	ctx := newContext(t, doc, "https://rdap.example/domain/example.com")
	check := checks.HandleFormat{Code: -10500}

	require.True(t, check.DoLaunch(ctx))
	assert.False(t, check.DoValidate(ctx))
	results := ctx.Accumulator.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10500, results[0].Code)
}

func TestHandleFormatUnknownROID(t *testing.T) {
	doc := map[string]any{"handle": "ABC-BADROID"}
	ctx := newContext(t, doc, "https://rdap.example/domain/example.com")
	check := checks.HandleFormat{Code: -10500}

	assert.False(t, check.DoValidate(ctx))
	results := ctx.Accumulator.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10501, results[0].Code)
}

func TestHandleFormatSkippedForNonDomainQuery(t *testing.T) {
	doc := map[string]any{"handle": "not a handle!"}
	ctx := newContext(t, doc, "https://rdap.example/help")
	check := checks.HandleFormat{Code: -10500}

	assert.False(t, check.DoLaunch(ctx))
}

func TestCORSHeaderMissingOnSecondHop(t *testing.T) {
	doc := map[string]any{}
	ctx := newContext(t, doc, "https://rdap.example/domain/example.com")
	ctx.Exchange = &httpcontext.Exchange{Chain: []httpcontext.Response{
		{StatusCode: 302, Header: http.Header{"Access-Control-Allow-Origin": {"*"}}},
		{StatusCode: 200, Header: http.Header{}},
	}}
	check := checks.CORSHeader{}

	assert.False(t, check.DoValidate(ctx))
	results := ctx.Accumulator.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -20500, results[0].Code)
}

func TestQueryURILabelConsistencyMissingLdhName(t *testing.T) {
	doc := map[string]any{"unicodeName": "tést.example"}
	ctx := newContext(t, doc, "http://example/domain/test.xn--viagnie-eya.example")
	check := checks.QueryURILabelConsistency{Code: -10700}

	require.True(t, check.DoLaunch(ctx))
	assert.False(t, check.DoValidate(ctx))
	results := ctx.Accumulator.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10700, results[0].Code)
	assert.Contains(t, results[0].Message, "The RDAP Query URI contains only A-label or NR-LDH labels")
}

func TestIPAddressFormatSpecialUse(t *testing.T) {
	doc := map[string]any{
		"ipAddresses": map[string]any{
			"v4": []any{"192.168.1.1"},
		},
	}
	ctx := newContext(t, doc, "https://rdap.example/nameserver/ns1.example.com")
	check := checks.IPAddressFormat{Code: -10800}

	assert.False(t, check.DoValidate(ctx))
	results := ctx.Accumulator.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10801, results[0].Code)
}

func TestIPAddressFormatUnparsable(t *testing.T) {
	doc := map[string]any{
		"ipAddresses": map[string]any{
			"v4": []any{"not-an-ip"},
		},
	}
	ctx := newContext(t, doc, "https://rdap.example/nameserver/ns1.example.com")
	check := checks.IPAddressFormat{Code: -10800}

	assert.False(t, check.DoValidate(ctx))
	results := ctx.Accumulator.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10800, results[0].Code)
}

package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapval/conformance/internal/engine"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/schema"
)

const minimalDomainSchema = `{
	"type": "object",
	"structureInvalid": -10300,
	"properties": {
		"ldhName": {"type": "string", "errorCode": -10401, "duplicateKeys": -10402},
		"handle": {"type": "string"}
	},
	"required": ["ldhName"]
}`

func TestNewRejectsNilSchema(t *testing.T) {
	_, err := engine.New(nil)
	assert.ErrorIs(t, err, engine.ErrNilSchema)
}

func TestValidateValidDocumentProducesNoSchemaResults(t *testing.T) {
	tree, err := schema.NewCompiler().Compile([]byte(minimalDomainSchema))
	require.NoError(t, err)
	e, err := engine.New(tree)
	require.NoError(t, err)

	cfg, err := rdapcfg.New("https://rdap.example/domain/example.com")
	require.NoError(t, err)

	acc := e.Validate(context.Background(), []byte(`{"ldhName":"example.com","handle":"ABC-VRSN"}`), cfg, nil)
	assert.Equal(t, 0, acc.Len())
}

func TestValidateMalformedDocumentStopsBeforeProfileChecks(t *testing.T) {
	tree, err := schema.NewCompiler().Compile([]byte(minimalDomainSchema))
	require.NoError(t, err)
	e, err := engine.New(tree)
	require.NoError(t, err)

	cfg, err := rdapcfg.New("https://rdap.example/domain/example.com")
	require.NoError(t, err)

	acc := e.Validate(context.Background(), []byte(`{not json`), cfg, nil)
	results := acc.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10300, results[0].Code)
}

func TestValidateRunsProfileChecks(t *testing.T) {
	tree, err := schema.NewCompiler().Compile([]byte(minimalDomainSchema))
	require.NoError(t, err)
	e, err := engine.New(tree)
	require.NoError(t, err)

	cfg, err := rdapcfg.New("https://rdap.example/domain/example.com")
	require.NoError(t, err)

	acc := e.Validate(context.Background(), []byte(`{"ldhName":"example.com","handle":"bad handle!"}`), cfg, nil)
	results := acc.Results()
	require.NotEmpty(t, results)
	assert.Equal(t, -10523, results[0].Code)
}

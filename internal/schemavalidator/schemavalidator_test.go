package schemavalidator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/internal/schema"
	"github.com/rdapval/conformance/internal/schemavalidator"
)

func mustCompile(t *testing.T, raw string) *schema.Schema {
	t.Helper()
	s, err := schema.NewCompiler().Compile([]byte(raw))
	require.NoError(t, err)
	return s
}

func mustCatalog(t *testing.T) *result.Catalog {
	t.Helper()
	c, err := result.NewCatalog("en")
	require.NoError(t, err)
	return c
}

const domainSchema = `{
	"type": "object",
	"structureInvalid": -10300,
	"properties": {
		"ldhName": {"type": "string", "errorCode": -10401, "duplicateKeys": -10402}
	},
	"required": ["ldhName"]
}`

func TestValidateDuplicateKey(t *testing.T) {
	v := schemavalidator.New(mustCompile(t, domainSchema), result.NewAccumulator(), mustCatalog(t))

	ok := v.Validate([]byte(`{"ldhName":"a.example","ldhName":"b.example"}`))

	assert.False(t, ok)
	results := v.Acc.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10402, results[0].Code)
	assert.Equal(t, "ldhName:a.example", results[0].Value)
}

func TestValidateMalformedJSON(t *testing.T) {
	v := schemavalidator.New(mustCompile(t, domainSchema), result.NewAccumulator(), mustCatalog(t))

	ok := v.Validate([]byte(`{not json`))

	assert.False(t, ok)
	results := v.Acc.Results()
	require.Len(t, results, 1)
	assert.Equal(t, -10300, results[0].Code)
	assert.Contains(t, results[0].Message, "structure is not syntactically valid.")
}

func TestValidateValidDocument(t *testing.T) {
	v := schemavalidator.New(mustCompile(t, domainSchema), result.NewAccumulator(), mustCatalog(t))

	ok := v.Validate([]byte(`{"ldhName":"a.example"}`))

	assert.True(t, ok)
	assert.Equal(t, 0, v.Acc.Len())
}

func TestValidateSchemaFailureDispatchesParsers(t *testing.T) {
	v := schemavalidator.New(mustCompile(t, domainSchema), result.NewAccumulator(), mustCatalog(t))

	ok := v.Validate([]byte(`{"ldhName":123}`))

	assert.False(t, ok)
	results := v.Acc.Results()
	require.NotEmpty(t, results)
	assert.Equal(t, -10401, results[0].Code)
}

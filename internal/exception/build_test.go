package exception_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/schema"
)

func TestBuildValidReturnsNil(t *testing.T) {
	result := &schema.EvaluationResult{Valid: true}
	assert.Nil(t, exception.Build(result))
}

func TestBuildMissingKeyLeaf(t *testing.T) {
	result := &schema.EvaluationResult{
		Valid:            false,
		InstanceLocation: "",
		SchemaLocation:   "#",
		Errors: map[string]*schema.EvaluationError{
			"required": schema.NewEvaluationError("required", "missing_required_property",
				"Required property {property} is missing", map[string]any{"property": "'ldhName'"}),
		},
	}

	node := exception.Build(result)
	require.NotNil(t, node)
	leaves := node.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, exception.CategoryMissingKey, leaves[0].Category)
}

func TestBuildWrapperRecursesThroughProperties(t *testing.T) {
	nested := &schema.EvaluationResult{
		Valid:            false,
		InstanceLocation: "/ldhName",
		SchemaLocation:   "#/properties/ldhName",
		Errors: map[string]*schema.EvaluationError{
			"type": schema.NewEvaluationError("type", "type_mismatch",
				"Value is {received} but should be {expected}",
				map[string]any{"received": "number", "expected": "string"}),
		},
	}
	root := &schema.EvaluationResult{
		Valid:            false,
		InstanceLocation: "",
		SchemaLocation:   "#",
		Errors: map[string]*schema.EvaluationError{
			"properties": schema.NewEvaluationError("properties", "property_mismatch",
				"Property {property} does not match the schema", map[string]any{"property": "'ldhName'"}),
		},
		Details: []*schema.EvaluationResult{nested},
	}

	node := exception.Build(root)
	require.NotNil(t, node)
	leaves := node.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, exception.CategoryBasicType, leaves[0].Category)
	assert.Equal(t, "/ldhName", leaves[0].InstancePointer)
}

func TestBuildCombinedKeywordFansOutPerBranch(t *testing.T) {
	innerA := &schema.EvaluationResult{
		Valid: false,
		Errors: map[string]*schema.EvaluationError{
			"type": schema.NewEvaluationError("type", "type_mismatch", "bad type"),
		},
	}
	innerB := &schema.EvaluationResult{
		Valid: false,
		Errors: map[string]*schema.EvaluationError{
			"enum": schema.NewEvaluationError("enum", "value_not_in_enum", "bad enum"),
		},
	}
	root := &schema.EvaluationResult{
		Valid: false,
		Errors: map[string]*schema.EvaluationError{
			"anyOf": schema.NewEvaluationError("anyOf", "any_of_item_mismatch", "Value does not match anyOf schema"),
		},
		Details: []*schema.EvaluationResult{innerA, innerB},
	}

	node := exception.Build(root)
	require.NotNil(t, node)
	leaves := node.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, exception.CategoryBasicType, leaves[0].Category)
	assert.Equal(t, exception.CategoryEnum, leaves[1].Category)
}

func TestBuildCombinedKeywordWithoutDecomposableBranchIsComplexTypeLeaf(t *testing.T) {
	root := &schema.EvaluationResult{
		Valid: false,
		Errors: map[string]*schema.EvaluationError{
			"not": schema.NewEvaluationError("not", "not_mismatch", "Value must not match the schema"),
		},
	}

	node := exception.Build(root)
	require.NotNil(t, node)
	leaves := node.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, exception.CategoryComplexType, leaves[0].Category)
	assert.Equal(t, "not", leaves[0].Combinator)
}

func TestBuildAdditionalPropertiesFalseSchemaIsUnknownKey(t *testing.T) {
	nested := &schema.EvaluationResult{
		Valid:            false,
		InstanceLocation: "/unexpectedField",
		Errors: map[string]*schema.EvaluationError{
			"schema": schema.NewEvaluationError("schema", "false_schema_mismatch", "No values are allowed because the schema is set to 'false'"),
		},
	}
	root := &schema.EvaluationResult{
		Valid: false,
		Errors: map[string]*schema.EvaluationError{
			"additionalProperties": schema.NewEvaluationError("additionalProperties", "additional_property_mismatch",
				"Additional property {property} does not match the schema", map[string]any{"property": "'unexpectedField'"}),
		},
		Details: []*schema.EvaluationResult{nested},
	}

	node := exception.Build(root)
	require.NotNil(t, node)
	leaves := node.Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, exception.CategoryUnknownKey, leaves[0].Category)
	assert.Equal(t, "/unexpectedField", leaves[0].InstancePointer)
}

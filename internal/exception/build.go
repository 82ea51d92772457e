package exception

import "github.com/rdapval/conformance/internal/schema"

// Build decomposes the failure tree produced by schema validation into a
// Node tree. Wrapper keywords (properties, items, $ref, ...) are recursed
// through transparently since their own EvaluationError is a structural
// pointer to a nested Detail, not an informative failure; combined keywords
// (allOf/anyOf/oneOf/not/if-then-else) become a CategoryComplexType node
// whose Causes hold each failing branch's own decomposed failure. Leaves
// descends into those Causes the same as any other node, so every failing
// branch surfaces on its own; the complex-type node itself only ends up a
// leaf when none of its branches had a decomposable cause. Every other
// keyword becomes a leaf directly from its EvaluationError.
//
// Build returns nil if result is valid: there is nothing to decompose.
func Build(result *schema.EvaluationResult) *Node {
	if result == nil || result.IsValid() {
		return nil
	}
	return buildNode(result)
}

func buildNode(result *schema.EvaluationResult) *Node {
	root := &Node{
		InstancePointer: result.InstanceLocation,
		SchemaPointer:   result.SchemaLocation,
	}

	invalidDetails := make([]*schema.EvaluationResult, 0, len(result.Details))
	for _, d := range result.Details {
		if d != nil && !d.IsValid() {
			invalidDetails = append(invalidDetails, d)
		}
	}

	for keyword, err := range result.Errors {
		switch {
		case wrapperKeywords[keyword]:
			for _, d := range invalidDetails {
				if child := buildNode(d); child != nil {
					root.Causes = append(root.Causes, child)
				}
			}
		case combinedKeywords[keyword]:
			node := &Node{
				Category:        CategoryComplexType,
				InstancePointer: result.InstanceLocation,
				SchemaPointer:   result.SchemaLocation,
				Keyword:         keyword,
				Message:         err.Error(),
				Combinator:      keyword,
			}
			for _, d := range invalidDetails {
				if child := buildNode(d); child != nil {
					node.Causes = append(node.Causes, child)
				}
			}
			root.Causes = append(root.Causes, node)
		default:
			root.Causes = append(root.Causes, &Node{
				Category:        categoryFor(keyword, err.Params),
				InstancePointer: result.InstanceLocation,
				SchemaPointer:   result.SchemaLocation,
				Keyword:         keyword,
				Message:         err.Error(),
			})
		}
	}

	// A node with no Errors of its own but invalid Details (e.g. the engine
	// descended through a keyword this package doesn't special-case) still
	// needs its failing children surfaced.
	if len(result.Errors) == 0 {
		for _, d := range invalidDetails {
			if child := buildNode(d); child != nil {
				root.Causes = append(root.Causes, child)
			}
		}
	}

	return root
}

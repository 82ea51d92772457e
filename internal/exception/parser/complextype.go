package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

type complexTypeParser struct{}

func (complexTypeParser) Matches(leaf *exception.Node) bool {
	return leaf.Category == exception.CategoryComplexType
}

// Parse emits one synthesized result for the union/intersection failure as
// a whole. It only matches when the combined keyword has no decomposable
// branch failure of its own (exception.Node.Leaves fans out into Causes
// otherwise, so each failing branch reaches its own category parser
// instead of this one).
func (complexTypeParser) Parse(ctx *Context, leaf *exception.Node) {
	code, ok := lookupCode(ctx, leaf)
	if !ok {
		return
	}
	ctx.Accumulator.Add(result.Result{
		Code:    code,
		Value:   valueFor(leaf),
		Message: ctx.Catalog.Message("rdap_general_complex_type_violation", nil),
	})
}

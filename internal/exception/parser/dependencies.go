package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

type dependenciesParser struct{}

func (dependenciesParser) Matches(leaf *exception.Node) bool {
	return leaf.Category == exception.CategoryDependencies
}

func (dependenciesParser) Parse(ctx *Context, leaf *exception.Node) {
	code, ok := lookupCode(ctx, leaf)
	if !ok {
		return
	}
	ctx.Accumulator.Add(result.Result{
		Code:    code,
		Value:   valueFor(leaf),
		Message: ctx.Catalog.Message("rdap_general_dependency_missing", nil),
	})
}

package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

type ipv6Parser struct{}

func (ipv6Parser) Matches(leaf *exception.Node) bool {
	return leaf.Category == exception.CategoryIPv6
}

func (ipv6Parser) Parse(ctx *Context, leaf *exception.Node) {
	code, ok := lookupCode(ctx, leaf)
	if !ok {
		return
	}
	ctx.Accumulator.Add(result.Result{
		Code:    code,
		Value:   valueFor(leaf),
		Message: ctx.Catalog.Message("rdap_general_ipv6_invalid", nil),
	})
}

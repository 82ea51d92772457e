package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

type ipv4Parser struct{}

func (ipv4Parser) Matches(leaf *exception.Node) bool {
	return leaf.Category == exception.CategoryIPv4
}

func (ipv4Parser) Parse(ctx *Context, leaf *exception.Node) {
	code, ok := lookupCode(ctx, leaf)
	if !ok {
		return
	}
	ctx.Accumulator.Add(result.Result{
		Code:    code,
		Value:   valueFor(leaf),
		Message: ctx.Catalog.Message("rdap_general_ipv4_invalid", nil),
	})
}

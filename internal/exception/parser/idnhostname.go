package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

type idnHostnameParser struct{}

func (idnHostnameParser) Matches(leaf *exception.Node) bool {
	return leaf.Category == exception.CategoryIDNHostname
}

func (idnHostnameParser) Parse(ctx *Context, leaf *exception.Node) {
	code, ok := lookupCode(ctx, leaf)
	if !ok {
		return
	}
	ctx.Accumulator.Add(result.Result{
		Code:    code,
		Value:   valueFor(leaf),
		Message: ctx.Catalog.Message("rdap_general_idn_hostname_invalid", nil),
	})
}

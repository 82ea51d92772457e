package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

type hostnameInURIParser struct{}

func (hostnameInURIParser) Matches(leaf *exception.Node) bool {
	return leaf.Category == exception.CategoryHostnameInURI
}

func (hostnameInURIParser) Parse(ctx *Context, leaf *exception.Node) {
	code, ok := lookupCode(ctx, leaf)
	if !ok {
		return
	}
	ctx.Accumulator.Add(result.Result{
		Code:    code,
		Value:   valueFor(leaf),
		Message: ctx.Catalog.Message("rdap_general_hostname_in_uri_invalid", nil),
	})
}

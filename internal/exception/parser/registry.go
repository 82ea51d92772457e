package parser

import (
	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/result"
)

// Parser inspects a single leaf failure and, if Matches reports true, emits
// zero or more coded results via Parse. Parsers are independent: Dispatch
// never lets one parser's outcome influence whether another runs, and more
// than one may legitimately emit for the same leaf.
type Parser interface {
	Matches(leaf *exception.Node) bool
	Parse(ctx *Context, leaf *exception.Node)
}

// Default returns the full registered set of category parsers, one per
// exception.Category.
func Default() []Parser {
	return []Parser{
		unknownKeyParser{},
		missingKeyParser{},
		basicTypeParser{},
		enumParser{},
		constParser{},
		containsConstParser{},
		regexParser{},
		datetimeParser{},
		ipv4Parser{},
		ipv6Parser{},
		idnHostnameParser{},
		hostnameInURIParser{},
		uniqueItemsParser{},
		numericParser{},
		dependenciesParser{},
		complexTypeParser{},
	}
}

// Dispatch fans every leaf in leaves out across every parser in parsers
// (no short-circuiting: a non-matching parser simply does nothing), then
// runs the shared validation-wrapper pass for that leaf's instance pointer.
func Dispatch(ctx *Context, parsers []Parser, leaves []*exception.Node) {
	for _, leaf := range leaves {
		for _, p := range parsers {
			if p.Matches(leaf) {
				p.Parse(ctx, leaf)
			}
		}
		wrapperPass(ctx, leaf)
	}
}

// wrapperPass implements the shared validation-wrapper pass from spec §4.3:
// for every ancestor schema node bearing a validationName annotation, emit
// a generic "value does not pass X validation" result keyed by that
// ancestor's own parentValidationCode annotation.
func wrapperPass(ctx *Context, leaf *exception.Node) {
	nodes := ctx.Tree.FindValidationNodes(leaf.InstancePointer, "validationName")
	for _, vn := range nodes {
		code, err := ctx.Tree.AnnotationOn(vn.Node, "parentValidationCode")
		if err != nil {
			ctx.emitSentinel(leaf.InstancePointer, err)
			continue
		}
		codeInt, ok := toInt(code)
		if !ok {
			ctx.emitSentinel(leaf.InstancePointer, exception.ErrAnnotationNotNumeric)
			continue
		}
		ctx.Accumulator.Add(result.Result{
			Code:  codeInt,
			Value: leaf.InstancePointer,
			Message: ctx.Catalog.Message("rdap_general_validation_wrapper",
				map[string]any{"validationName": vn.Name}),
		})
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// valueFor formats a result's Value field in the conventional
// "jsonPointer:queryResult" shape spec.md's data model describes.
func valueFor(leaf *exception.Node) string {
	return leaf.InstancePointer + ":" + leaf.Message
}

// lookupCode resolves the errorCode annotation at leaf's instance pointer,
// emitting the sentinel result and returning ok=false if the lookup fails
// or the annotation is not numeric.
func lookupCode(ctx *Context, leaf *exception.Node) (int, bool) {
	raw, err := ctx.Tree.AnnotationAt(leaf.InstancePointer, "errorCode")
	if err != nil {
		ctx.emitSentinel(leaf.InstancePointer, err)
		return 0, false
	}
	code, ok := toInt(raw)
	if !ok {
		ctx.emitSentinel(leaf.InstancePointer, exception.ErrAnnotationNotNumeric)
		return 0, false
	}
	return code, true
}

// Package parser holds the exception parser registry: one independent rule
// per leaf-failure category, fanned out without short-circuiting, plus the
// shared validation-wrapper pass that emits generic parent-validation-code
// results alongside each specific one.
package parser

import (
	"rivaas.dev/logging"

	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/internal/schema"
)

// Context is the shared state every Parser's Parse method operates against.
// Side effects are restricted to appending to Accumulator.
type Context struct {
	Tree        *schema.Tree
	Document    any
	Accumulator *result.Accumulator
	Catalog     *result.Catalog
	Logger      *logging.Logger
}

// emitSentinel records the schema-authoring-inconsistency sentinel result
// and logs a diagnostic, per the "error-code lookup throws" fallback every
// parser shares.
func (c *Context) emitSentinel(pointer string, cause error) {
	c.Accumulator.Add(result.Result{
		Code:    result.SentinelCode,
		Value:   pointer,
		Message: "schema annotation lookup failed: " + cause.Error(),
	})
	if c.Logger != nil {
		c.Logger.Info("exception parser: annotation lookup failed",
			"pointer", pointer, "error", cause)
	}
}

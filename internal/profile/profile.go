// Package profile holds the profile check framework: the Check contract,
// the shared CheckContext every check is evaluated against, and a Runner
// that runs registered checks in registration order.
package profile

import (
	"github.com/rdapval/conformance/internal/dataset"
	"github.com/rdapval/conformance/internal/httpcontext"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/result"
)

// Check is one profile-specific rule (TIG 1.x, Response Profile 2.x).
// Checks never depend on each other's results; their only side effect is
// appending to CheckContext.Accumulator.
type Check interface {
	// GroupName identifies the check for logging and test aggregation.
	GroupName() string
	// DoLaunch gates the check by query type. A check that applies
	// regardless of query type returns true unconditionally.
	DoLaunch(ctx *CheckContext) bool
	// DoValidate runs the check, returning true iff no new results were
	// produced.
	DoValidate(ctx *CheckContext) bool
}

// CheckContext bundles the six collaborators every Check is evaluated
// against.
type CheckContext struct {
	Document    any
	Accumulator *result.Accumulator
	Config      *rdapcfg.Config
	Datasets    *dataset.Service
	Exchange    *httpcontext.Exchange
	Catalog     *result.Catalog
}

// Runner runs a registered set of checks in registration order.
type Runner struct {
	Checks []Check
}

// NewRunner returns a Runner over checks, in the order given.
func NewRunner(checks ...Check) *Runner {
	return &Runner{Checks: checks}
}

// Run evaluates every registered check whose DoLaunch gate passes.
func (r *Runner) Run(ctx *CheckContext) {
	for _, c := range r.Checks {
		if c.DoLaunch(ctx) {
			c.DoValidate(ctx)
		}
	}
}

package checks

import (
	"regexp"
	"strings"

	"github.com/rdapval/conformance/internal/dataset"
	"github.com/rdapval/conformance/internal/profile"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/internal/schema"
)

var handlePattern = regexp.MustCompile(`^(\w|_){1,80}-\w{1,8}$`)

// HandleFormat validates every "handle" string in the document against the
// EPP ROID handle grammar, then against the registered ROID set.
type HandleFormat struct {
	Code int
}

func (HandleFormat) GroupName() string { return "handleFormat" }

func (HandleFormat) DoLaunch(ctx *profile.CheckContext) bool {
	return ctx.Config.QueryType == rdapcfg.QueryTypeDomain
}

func (h HandleFormat) DoValidate(ctx *profile.CheckContext) bool {
	clean := true
	for _, v := range schema.FindAllValuesOf(ctx.Document, "handle") {
		handle, ok := v.(string)
		if !ok {
			continue
		}
		if !handlePattern.MatchString(handle) {
			ctx.Accumulator.Add(result.Result{
				Code:    h.Code,
				Value:   handle,
				Message: ctx.Catalog.Message("rdap_profile_handle_format_invalid", nil),
			})
			clean = false
			continue
		}

		_, roid, found := strings.Cut(handle, "-")
		if !found {
			continue
		}
		table, ok := ctx.Datasets.Get(dataset.EPPROID)
		if !ok {
			continue
		}
		if table.IsInvalid(roid) {
			ctx.Accumulator.Add(result.Result{
				Code:    h.Code - 1,
				Value:   handle,
				Message: ctx.Catalog.Message("rdap_profile_handle_roid_unknown", nil),
			})
			clean = false
		}
	}
	return clean
}

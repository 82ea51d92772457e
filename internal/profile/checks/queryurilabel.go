package checks

import (
	"github.com/rdapval/conformance/internal/profile"
	"github.com/rdapval/conformance/internal/rdapcfg"
	"github.com/rdapval/conformance/internal/result"
)

// QueryURILabelConsistency checks that the topmost response object carries
// ldhName when the query URI used an A-label, and unicodeName when it used
// a U-label.
type QueryURILabelConsistency struct {
	Code int
}

func (QueryURILabelConsistency) GroupName() string { return "queryURILabelConsistency" }

func (QueryURILabelConsistency) DoLaunch(ctx *profile.CheckContext) bool {
	return ctx.Config.QueryType == rdapcfg.QueryTypeDomain || ctx.Config.QueryType == rdapcfg.QueryTypeNameserver
}

func (q QueryURILabelConsistency) DoValidate(ctx *profile.CheckContext) bool {
	object, ok := ctx.Document.(map[string]any)
	if !ok {
		return true
	}
	label := ctx.Config.RegistrableLabel()
	clean := true

	if rdapcfg.IsALabel(label) {
		if _, has := object["ldhName"]; !has {
			ctx.Accumulator.Add(result.Result{
				Code:    q.Code,
				Value:   ctx.Config.QueryURI.String(),
				Message: ctx.Catalog.Message("rdap_profile_ldh_name_missing", nil),
			})
			clean = false
		}
	}

	if rdapcfg.IsULabel(label) {
		if _, has := object["unicodeName"]; !has {
			ctx.Accumulator.Add(result.Result{
				Code:    q.Code - 1,
				Value:   ctx.Config.QueryURI.String(),
				Message: ctx.Catalog.Message("rdap_profile_unicode_name_missing", nil),
			})
			clean = false
		}
	}

	return clean
}

package checks

import (
	"fmt"
	"strings"

	"github.com/rdapval/conformance/internal/profile"
	"github.com/rdapval/conformance/internal/result"
)

const corsHeaderMissingCode = -20500

// CORSHeader implements TIG 1.13: every response in the redirect chain
// must carry an Access-Control-Allow-Origin header permitting cross-origin
// access.
type CORSHeader struct{}

func (CORSHeader) GroupName() string { return "corsHeader" }

func (CORSHeader) DoLaunch(*profile.CheckContext) bool { return true }

func (CORSHeader) DoValidate(ctx *profile.CheckContext) bool {
	if ctx.Exchange == nil {
		return true
	}
	clean := true
	for _, resp := range ctx.Exchange.Chain {
		origin := resp.Header.Get("Access-Control-Allow-Origin")
		if strings.Contains(origin, "*") {
			continue
		}
		ctx.Accumulator.Add(result.Result{
			Code:    corsHeaderMissingCode,
			Value:   fmt.Sprintf("%v", resp.Header),
			Message: ctx.Catalog.Message("rdap_profile_cors_header_missing", nil),
		})
		clean = false
	}
	return clean
}

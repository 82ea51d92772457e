package checks

import (
	"net"

	"github.com/rdapval/conformance/internal/dataset"
	"github.com/rdapval/conformance/internal/profile"
	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/internal/schema"
)

// IPAddressFormat parses every IP string under a nameserver ipAddresses
// object's "v4"/"v6" arrays and rejects addresses that are unparsable or
// that fall within a special-purpose registry range.
type IPAddressFormat struct {
	Code int
}

func (IPAddressFormat) GroupName() string { return "ipAddressFormat" }

func (IPAddressFormat) DoLaunch(*profile.CheckContext) bool { return true }

func (c IPAddressFormat) DoValidate(ctx *profile.CheckContext) bool {
	clean := true
	clean = c.validateFamily(ctx, "v4", dataset.IPv4SpecialPurpose) && clean
	clean = c.validateFamily(ctx, "v6", dataset.IPv6SpecialPurpose) && clean
	return clean
}

func (c IPAddressFormat) validateFamily(ctx *profile.CheckContext, key, tableName string) bool {
	clean := true
	for _, v := range schema.FindAllValuesOf(ctx.Document, key) {
		addrs, ok := v.([]any)
		if !ok {
			continue
		}
		for _, a := range addrs {
			addr, ok := a.(string)
			if !ok {
				continue
			}
			if net.ParseIP(addr) == nil {
				ctx.Accumulator.Add(result.Result{
					Code:    c.Code,
					Value:   addr,
					Message: ctx.Catalog.Message("rdap_profile_ip_address_invalid", nil),
				})
				clean = false
				continue
			}
			table, ok := ctx.Datasets.Get(tableName)
			if !ok {
				continue
			}
			if table.IsInvalid(addr) {
				ctx.Accumulator.Add(result.Result{
					Code:    c.Code - 1,
					Value:   addr,
					Message: ctx.Catalog.Message("rdap_profile_ip_address_special_use", nil),
				})
				clean = false
			}
		}
	}
	return clean
}

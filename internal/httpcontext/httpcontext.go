// Package httpcontext carries the HTTP redirect chain a profile check
// needs (e.g. CORS header presence across every hop), independent of
// however the chain was actually fetched.
package httpcontext

import "net/http"

// Response is one hop of the redirect chain.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Exchange is the full redirect chain for one query, in request order;
// Chain[len(Chain)-1] is the final response.
type Exchange struct {
	Chain []Response
}

// Final returns the last response in the chain, or the zero Response if
// the chain is empty.
func (e *Exchange) Final() Response {
	if len(e.Chain) == 0 {
		return Response{}
	}
	return e.Chain[len(e.Chain)-1]
}

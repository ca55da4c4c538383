package aspen

import "github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"

// Request is the input to a single authorization decision: a principal
// attempting an action against a resource, with the runtime context a
// statement's conditions may inspect. A Request is constructed per
// decision and discarded; it is never mutated by evaluation.
type Request struct {
	Principal principal.Identity
	Action    string
	Resource  string
	Context   Context
}

// NewRequest builds a Request with an empty Context ready for the
// Context.With* helpers, e.g.:
//
//	req := aspen.NewRequest(id, "s3:GetObject", "arn:aws:s3:::bucket/key")
//	req.Context.WithIP("aws:SourceIp", clientIP)
func NewRequest(id principal.Identity, action, resource string) Request {
	return Request{Principal: id, Action: action, Resource: resource, Context: NewContext()}
}

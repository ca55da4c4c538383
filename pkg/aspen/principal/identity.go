// Package principal models the identity attempting an action and builds
// that identity from the credential formats a host service actually
// terminates (JWT bearer tokens, verified OIDC ID tokens, LDAP directory
// entries).
//
// This is the reference implementation of the "Principal utility"
// external collaborator contract: the policy engine only needs an
// Identity's Kind and ID to evaluate a Principal/NotPrincipal gate, and a
// host is free to produce one by any means it likes.
package principal

// Kind is the principal category a policy's Principal/NotPrincipal block
// can name.
type Kind string

const (
	AWS           Kind = "AWS"
	CanonicalUser Kind = "CanonicalUser"
	Federated     Kind = "Federated"
	Service       Kind = "Service"
)

// Identity is the principal presented with a Request: the kind of caller
// and an identifier compared against a statement's Principal patterns
// (an account/user/role ARN, a canonical user ID, a federated subject, or
// a service name).
type Identity struct {
	Kind Kind
	ID   string
	// Tags carries attribute-based-access-control tags keyed the way
	// aws:PrincipalTag/<key> condition keys expect, so a host's context
	// builder can copy them straight into a Request's Context.
	Tags map[string]string
}

// Anonymous is the identity used for requests with no authenticated
// caller; it matches only Principal blocks containing the literal "*".
var Anonymous = Identity{Kind: AWS, ID: "*"}

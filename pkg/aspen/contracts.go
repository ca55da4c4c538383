package aspen

import (
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/arn"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
)

// ARNResolver is the "ARN utility" external collaborator contract: the
// core evaluator only ever needs to parse a string into an ARN and
// compare two ARNs for segment-aware equality. pkg/aspen/arn is the
// reference implementation; a host may substitute its own (e.g. one that
// validates partition/service vocabularies).
type ARNResolver interface {
	Parse(s string) (arn.ARN, error)
	Equal(a, b arn.ARN) bool
}

// PrincipalMatcher is the "Principal utility" external collaborator
// contract: given a statement's PrincipalSet and a request's Identity,
// report whether the identity satisfies the set. PrincipalSet.Matches is
// the default implementation used throughout this package; it is exposed
// as an interface so a host with its own account/role hierarchy can
// plug in richer matching (e.g. resolving an assumed-role session back to
// its underlying role ARN).
type PrincipalMatcher interface {
	Matches(set PrincipalSet, id principal.Identity) bool
}

// defaultPrincipalMatcher adapts PrincipalSet.Matches to PrincipalMatcher.
type defaultPrincipalMatcher struct{}

func (defaultPrincipalMatcher) Matches(set PrincipalSet, id principal.Identity) bool {
	return set.Matches(id)
}

// DefaultPrincipalMatcher is the PrincipalMatcher used when a Statement
// is evaluated directly via Statement.Matches/Policy.Evaluate.
var DefaultPrincipalMatcher PrincipalMatcher = defaultPrincipalMatcher{}

// DefaultARNResolver is the ARNResolver backed by pkg/aspen/arn, exposed
// for hosts that want the reference implementation without importing the
// arn package directly.
var DefaultARNResolver ARNResolver = arn.DefaultResolver{}

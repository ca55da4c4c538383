package aspen

import (
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/pattern"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
)

// PrincipalGate carries a statement's Principal or NotPrincipal block. A
// nil *PrincipalGate on a Statement means neither field was present
// (identity-policy mode): the principal check always passes.
type PrincipalGate struct {
	Set     PrincipalSet
	Negated bool
}

// Statement binds an Effect to the who/what/where of a rule plus an
// optional Condition block. Exactly one of Action/NotAction and one of
// Resource/NotResource must be set (enforced by the codec and the
// builder); Principal is optional.
type Statement struct {
	Sid       string
	Effect    Effect
	Action    InvertibleSet
	Resource  InvertibleSet
	Principal *PrincipalGate
	Condition ConditionBlock
}

// Matches runs the four evaluation gates in order (principal, action,
// resource, condition), short-circuiting on the first failure, per the
// statement matching design. version gates whether "${...}" policy
// variables in resource patterns and condition operands are resolved
// against req.Context before comparison.
func (s Statement) Matches(req Request, version PolicyVersion) bool {
	if !s.principalMatches(req.Principal) {
		return false
	}
	if !s.Action.Matches(req.Action, false) {
		return false
	}
	if !s.resourceMatches(req, version) {
		return false
	}
	return s.conditionMatches(req, version)
}

func (s Statement) principalMatches(id principal.Identity) bool {
	if s.Principal == nil {
		return true
	}
	matched := DefaultPrincipalMatcher.Matches(s.Principal.Set, id)
	if s.Principal.Negated {
		return !matched
	}
	return matched
}

func (s Statement) resourceMatches(req Request, version PolicyVersion) bool {
	if !version.SupportsVariables() {
		return s.Resource.Matches(req.Resource, true)
	}

	lookup := req.Context.lookupFirst
	any := false
	for _, p := range s.Resource.Patterns.Values {
		resolved := pattern.SubstituteVariables(p, lookup)
		if pattern.MatchesARN(resolved, req.Resource, true) {
			any = true
			break
		}
	}
	if s.Resource.Negated {
		return !any
	}
	return any
}

func (s Statement) conditionMatches(req Request, version PolicyVersion) bool {
	if s.Condition.Empty() {
		return true
	}
	var resolve func(string) string
	if version.SupportsVariables() {
		lookup := req.Context.lookupFirst
		resolve = func(v string) string { return pattern.SubstituteVariables(v, lookup) }
	}
	return s.Condition.Matches(req.Context, resolve)
}

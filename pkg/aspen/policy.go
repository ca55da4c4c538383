package aspen

import "encoding/json"

// Decision is the outcome of evaluating a Policy (or PolicySet) against a
// Request.
type Decision int

const (
	// DefaultDeny means no statement matched with either effect:
	// authorization fails closed.
	DefaultDeny Decision = iota
	DecisionAllow
	DecisionDeny
)

// Allow/Deny decision aliases read naturally at call sites:
// `if pol.Evaluate(req) != aspen.DecisionAllow`.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "Allow"
	case DecisionDeny:
		return "Deny"
	default:
		return "DefaultDeny"
	}
}

// Policy is an ordered, immutable sequence of Statements under a single
// PolicyVersion. Once constructed (by ParsePolicy, a builder, or Clone),
// a Policy is never mutated; concurrent Evaluate calls need no
// synchronization.
type Policy struct {
	Version    PolicyVersion
	ID         string
	Statements []Statement
}

// ParsePolicy decodes raw JSON into a Policy, applying every scalar/array
// and presence/absence tolerance in the codec design and validating
// every invariant in the data model. Any violation yields a *PolicyError
// with Kind KindPolicyFormat.
func ParsePolicy(raw []byte) (Policy, error) {
	var doc rawPolicy
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Policy{}, formatErr(-1, "invalid policy JSON: %v", err)
	}

	version := PolicyVersion(doc.Version)
	if !version.valid() {
		return Policy{}, formatErr(-1, "unsupported Version %q", doc.Version)
	}
	if version == "" {
		version = DefaultVersion
	}

	statements, err := decodeStatements(doc.Statement)
	if err != nil {
		return Policy{}, err
	}
	if len(statements) == 0 {
		return Policy{}, formatErr(-1, "policy must have at least one statement")
	}

	return Policy{Version: version, ID: doc.ID, Statements: statements}, nil
}

// SerializePolicy renders a Policy back to its canonical JSON form. The
// result is not guaranteed byte-identical to any source document that
// produced an equivalent Policy, only semantically identical under
// Evaluate.
func SerializePolicy(p Policy) ([]byte, error) {
	return json.Marshal(toRawPolicy(p))
}

// rawPolicy is the top-level JSON shape; Statement is left as a
// json.RawMessage so it can be decoded as either a single object or an
// array of objects.
type rawPolicy struct {
	Version   string          `json:"Version,omitempty"`
	ID        string          `json:"Id,omitempty"`
	Statement json.RawMessage `json:"Statement"`
}

func decodeStatements(raw json.RawMessage) ([]Statement, error) {
	if len(raw) == 0 {
		return nil, formatErr(-1, "policy is missing Statement")
	}

	var array []Statement
	if err := json.Unmarshal(raw, &array); err == nil {
		return array, nil
	}

	var single Statement
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, formatErr(-1, "invalid Statement: %v", err)
	}
	return []Statement{single}, nil
}

func toRawPolicy(p Policy) rawPolicy {
	out := rawPolicy{Version: string(p.Version), ID: p.ID}
	if len(p.Statements) == 1 {
		b, _ := json.Marshal(p.Statements[0])
		out.Statement = b
	} else {
		b, _ := json.Marshal(p.Statements)
		out.Statement = b
	}
	return out
}

// Evaluate implements the policy evaluator: every statement is tested
// independently; any matching Deny wins outright, else any matching
// Allow wins, else DefaultDeny. Statement order has no bearing on the
// decision.
func (p Policy) Evaluate(req Request) Decision {
	matchedAllow := false
	for _, stmt := range p.Statements {
		if !stmt.Matches(req, p.Version) {
			continue
		}
		if stmt.Effect == Deny {
			return DecisionDeny
		}
		matchedAllow = true
	}
	if matchedAllow {
		return DecisionAllow
	}
	return DefaultDeny
}

// Clone returns a deep-enough copy of p safe to hand to a caller that
// wants to build a modified Policy without mutating the original
// (Policy's sub-entities are otherwise shared, which is fine since they
// are themselves immutable once constructed).
func (p Policy) Clone() Policy {
	out := Policy{Version: p.Version, ID: p.ID, Statements: make([]Statement, len(p.Statements))}
	copy(out.Statements, p.Statements)
	return out
}

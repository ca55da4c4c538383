package aspen

import "encoding/json"

// rawStatement is the JSON shape of a Statement, carrying both the
// positive and negative field names so the codec can detect "both
// present" schema violations before collapsing them into a Statement's
// InvertibleSet/PrincipalGate carriers.
type rawStatement struct {
	Sid          string           `json:"Sid,omitempty"`
	Effect       Effect           `json:"Effect"`
	Action       *StringSet       `json:"Action,omitempty"`
	NotAction    *StringSet       `json:"NotAction,omitempty"`
	Resource     *StringSet       `json:"Resource,omitempty"`
	NotResource  *StringSet       `json:"NotResource,omitempty"`
	Principal    *PrincipalSet    `json:"Principal,omitempty"`
	NotPrincipal *PrincipalSet    `json:"NotPrincipal,omitempty"`
	Condition    *ConditionBlock  `json:"Condition,omitempty"`
}

// UnmarshalJSON decodes one Statement, enforcing the "exactly one of
// Action/NotAction", "exactly one of Resource/NotResource", "at most one
// of Principal/NotPrincipal" invariants and that every present collection
// is non-empty.
func (s *Statement) UnmarshalJSON(data []byte) error {
	var raw rawStatement
	if err := json.Unmarshal(data, &raw); err != nil {
		return formatErr(-1, "invalid Statement: %v", err)
	}

	if raw.Effect != Allow && raw.Effect != Deny {
		return formatErr(-1, "Statement.Effect is required and must be Allow or Deny")
	}

	action, err := resolveInvertible("Action", raw.Action, raw.NotAction)
	if err != nil {
		return err
	}
	resource, err := resolveInvertible("Resource", raw.Resource, raw.NotResource)
	if err != nil {
		return err
	}
	gate, err := resolvePrincipalGate(raw.Principal, raw.NotPrincipal)
	if err != nil {
		return err
	}

	cond := NewConditionBlock()
	if raw.Condition != nil {
		cond = *raw.Condition
	}

	*s = Statement{
		Sid:       raw.Sid,
		Effect:    raw.Effect,
		Action:    action,
		Resource:  resource,
		Principal: gate,
		Condition: cond,
	}
	return nil
}

func resolveInvertible(field string, positive, negative *StringSet) (InvertibleSet, error) {
	switch {
	case positive != nil && negative != nil:
		return InvertibleSet{}, formatErr(-1, "Statement must not have both %s and Not%s", field, field)
	case positive != nil:
		if positive.Empty() {
			return InvertibleSet{}, formatErr(-1, "Statement.%s must be non-empty", field)
		}
		return InvertibleSet{Patterns: *positive}, nil
	case negative != nil:
		if negative.Empty() {
			return InvertibleSet{}, formatErr(-1, "Statement.Not%s must be non-empty", field)
		}
		return InvertibleSet{Patterns: *negative, Negated: true}, nil
	default:
		return InvertibleSet{}, formatErr(-1, "Statement must have exactly one of %s or Not%s", field, field)
	}
}

func resolvePrincipalGate(positive, negative *PrincipalSet) (*PrincipalGate, error) {
	switch {
	case positive != nil && negative != nil:
		return nil, formatErr(-1, "Statement must not have both Principal and NotPrincipal")
	case positive != nil:
		return &PrincipalGate{Set: *positive}, nil
	case negative != nil:
		return &PrincipalGate{Set: *negative, Negated: true}, nil
	default:
		return nil, nil
	}
}

// MarshalJSON re-expands a Statement into its JSON field names, choosing
// Action vs. NotAction (etc.) based on the carrier's Negated flag.
func (s Statement) MarshalJSON() ([]byte, error) {
	raw := rawStatement{Sid: s.Sid, Effect: s.Effect}

	if s.Action.Negated {
		raw.NotAction = &s.Action.Patterns
	} else {
		raw.Action = &s.Action.Patterns
	}
	if s.Resource.Negated {
		raw.NotResource = &s.Resource.Patterns
	} else {
		raw.Resource = &s.Resource.Patterns
	}
	if s.Principal != nil {
		if s.Principal.Negated {
			raw.NotPrincipal = &s.Principal.Set
		} else {
			raw.Principal = &s.Principal.Set
		}
	}
	if !s.Condition.Empty() {
		raw.Condition = &s.Condition
	}

	return json.Marshal(raw)
}

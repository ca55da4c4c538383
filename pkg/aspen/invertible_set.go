package aspen

import "github.com/piwi3910/nebulaio-aspen/pkg/aspen/pattern"

// InvertibleSet carries either a positive (Action/Resource) or negative
// (NotAction/NotResource) pattern set, collapsing the two mutually
// exclusive JSON fields into one carrier per the design note.
type InvertibleSet struct {
	Patterns StringSet
	Negated  bool
}

// Matches reports whether subject satisfies the set: for a positive set,
// at least one pattern must match; for a negative set, none may match.
// useARN selects segment-aware ARN matching (for Resource, case-sensitive)
// over flat glob matching (for Action, case-insensitive per spec).
func (s InvertibleSet) Matches(subject string, useARN bool) bool {
	any := false
	for _, p := range s.Patterns.Values {
		var matched bool
		if useARN {
			matched = pattern.MatchesARN(p, subject, true)
		} else {
			matched = pattern.Matches(p, subject, false)
		}
		if matched {
			any = true
			break
		}
	}
	if s.Negated {
		return !any
	}
	return any
}

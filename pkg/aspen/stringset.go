package aspen

import "encoding/json"

// StringSet is an order-preserving sequence of strings that may appear in
// JSON as either a single string or an array of strings. A StringSet may
// be empty (see Empty); the statement codec and builders reject an empty
// Action/Resource set. The
// internal model never carries the scalar-or-array ambiguity: decoding
// always yields a StringSet, and WasScalar records whether the source used
// the scalar form so the codec can round-trip it on output.
type StringSet struct {
	Values    []string
	WasScalar bool
}

// NewStringSet builds a StringSet from a programmatic literal, defaulting
// WasScalar to true when exactly one value is given (the common builder
// case matches how a hand-written policy usually looks).
func NewStringSet(values ...string) StringSet {
	return StringSet{Values: values, WasScalar: len(values) == 1}
}

// Empty reports whether the set carries no values.
func (s StringSet) Empty() bool { return len(s.Values) == 0 }

// Contains reports whether value is present verbatim (no wildcard
// expansion; callers needing pattern matching use the pattern package).
func (s StringSet) Contains(value string) bool {
	for _, v := range s.Values {
		if v == value {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts a single JSON string or a JSON array of strings.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Values = []string{single}
		s.WasScalar = true
		return nil
	}

	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return err
	}
	s.Values = multi
	s.WasScalar = false
	return nil
}

// MarshalJSON emits a scalar string when the set was originally scalar (or
// the builder produced exactly one value marked WasScalar), and an array
// otherwise.
func (s StringSet) MarshalJSON() ([]byte, error) {
	if s.WasScalar && len(s.Values) == 1 {
		return json.Marshal(s.Values[0])
	}
	return json.Marshal(s.Values)
}

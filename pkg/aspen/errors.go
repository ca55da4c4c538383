package aspen

import "fmt"

// ErrorKind distinguishes the three error surfaces the library reports
// per its error handling design: malformed JSON/schema, an operand that
// cannot be parsed into its operator's value space, and a missing
// required field in programmatic construction.
type ErrorKind string

const (
	// KindPolicyFormat marks a JSON parse failure or schema violation:
	// both Action and NotAction present, an unknown condition operator,
	// an empty collection where one is required, and so on.
	KindPolicyFormat ErrorKind = "PolicyFormatError"
	// KindInvalidValue marks an operand that fails to parse into its
	// operator's value space at construction time.
	KindInvalidValue ErrorKind = "InvalidValueError"
	// KindBuilder marks a required field missing in programmatic
	// construction via the Policy/Statement builders.
	KindBuilder ErrorKind = "BuilderError"
)

// PolicyError is the error type returned for all three error kinds. It
// carries enough context (statement index, operator/key/value) for a
// caller to report a precise diagnostic.
type PolicyError struct {
	Kind      ErrorKind
	Message   string
	Statement int // -1 when not statement-scoped
	Operator  string
	Key       string
	Value     string
	Field     string
	Err       error
}

func (e *PolicyError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Statement >= 0 {
		msg = fmt.Sprintf("%s (statement %d)", msg, e.Statement)
	}
	if e.Operator != "" {
		msg = fmt.Sprintf("%s [operator=%s]", msg, e.Operator)
	}
	if e.Key != "" {
		msg = fmt.Sprintf("%s [key=%s]", msg, e.Key)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s [field=%s]", msg, e.Field)
	}
	return msg
}

func (e *PolicyError) Unwrap() error { return e.Err }

// Is reports whether target is a PolicyError of the same Kind, so callers
// can write errors.Is(err, &PolicyError{Kind: aspen.KindBuilder}).
func (e *PolicyError) Is(target error) bool {
	t, ok := target.(*PolicyError)
	if !ok {
		return false
	}
	if t.Kind == "" {
		return true
	}
	return e.Kind == t.Kind
}

func formatErr(stmt int, format string, args ...any) *PolicyError {
	return &PolicyError{Kind: KindPolicyFormat, Message: fmt.Sprintf(format, args...), Statement: stmt}
}

func valueErr(operator, key, value, format string, args ...any) *PolicyError {
	return &PolicyError{
		Kind:      KindInvalidValue,
		Message:   fmt.Sprintf(format, args...),
		Operator:  operator,
		Key:       key,
		Value:     value,
		Statement: -1,
	}
}

func builderErr(field, format string, args ...any) *PolicyError {
	return &PolicyError{Kind: KindBuilder, Message: fmt.Sprintf(format, args...), Field: field, Statement: -1}
}

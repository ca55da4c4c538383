package aspen

import (
	"encoding/json"
	"fmt"
)

// Effect is a statement's disposition: Allow or Deny. It is a first-class
// type (rather than a bare string compare) so an invalid value is rejected
// at parse time instead of silently failing to match any statement.
type Effect string

const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

// UnmarshalJSON rejects any string other than "Allow" or "Deny".
func (e *Effect) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Effect(s) {
	case Allow, Deny:
		*e = Effect(s)
		return nil
	default:
		return fmt.Errorf("invalid Effect %q: must be Allow or Deny", s)
	}
}

package condition

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// ValidateOperand reports whether operand parses into op's value space,
// the construction-time check distinct from Evaluate's deliberate
// degrade-to-false on a malformed operand at request time. String-valued
// bases (StringEquals/StringLike/ArnLike and Null) impose no format
// beyond being a string, so they always validate.
func ValidateOperand(op Operator, operand string) error {
	switch op.Base {
	case BaseNumericEquals, BaseNumericLessThan, BaseNumericLessThanEquals,
		BaseNumericGreaterThan, BaseNumericGreaterThanEquals:
		if _, ok := parseNumeric(operand); !ok {
			return fmt.Errorf("condition: %q is not a valid numeric operand for %s", operand, op.Name)
		}
	case BaseDateEquals, BaseDateLessThan, BaseDateLessThanEquals,
		BaseDateGreaterThan, BaseDateGreaterThanEquals:
		if _, ok := parseDate(operand); !ok {
			return fmt.Errorf("condition: %q is not a valid date operand (RFC3339 or epoch seconds) for %s", operand, op.Name)
		}
	case BaseBool:
		if _, err := strconv.ParseBool(operand); err != nil {
			return fmt.Errorf("condition: %q is not a valid boolean operand for %s", operand, op.Name)
		}
	case BaseBinaryEquals:
		if _, err := base64.StdEncoding.DecodeString(operand); err != nil {
			return fmt.Errorf("condition: %q is not valid base64 for %s", operand, op.Name)
		}
	case BaseIPAddress:
		if !validIPOrCIDR(operand) {
			return fmt.Errorf("condition: %q is not a valid IP address or CIDR for %s", operand, op.Name)
		}
	}
	return nil
}

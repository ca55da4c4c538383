package condition

import "strconv"

// parseNumeric degrades a malformed operand to (0, false); per the
// engine's error handling design, a bad numeric value fails only the
// specific operator evaluation, never the overall decision.
func parseNumeric(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func numericEquals(value, operand string) bool {
	v, ok1 := parseNumeric(value)
	o, ok2 := parseNumeric(operand)
	return ok1 && ok2 && v == o
}

func numericLessThan(value, operand string) bool {
	v, ok1 := parseNumeric(value)
	o, ok2 := parseNumeric(operand)
	return ok1 && ok2 && v < o
}

func numericLessThanEquals(value, operand string) bool {
	v, ok1 := parseNumeric(value)
	o, ok2 := parseNumeric(operand)
	return ok1 && ok2 && v <= o
}

func numericGreaterThan(value, operand string) bool {
	v, ok1 := parseNumeric(value)
	o, ok2 := parseNumeric(operand)
	return ok1 && ok2 && v > o
}

func numericGreaterThanEquals(value, operand string) bool {
	v, ok1 := parseNumeric(value)
	o, ok2 := parseNumeric(operand)
	return ok1 && ok2 && v >= o
}

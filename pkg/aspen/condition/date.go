package condition

import (
	"strconv"
	"time"
)

// parseDate accepts RFC 3339 / ISO 8601 timestamps, or a bare integer
// interpreted as epoch seconds. A value satisfying neither degrades the
// comparison to false rather than aborting evaluation.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), true
	}
	return time.Time{}, false
}

func dateEquals(value, operand string) bool {
	v, ok1 := parseDate(value)
	o, ok2 := parseDate(operand)
	return ok1 && ok2 && v.Equal(o)
}

func dateLessThan(value, operand string) bool {
	v, ok1 := parseDate(value)
	o, ok2 := parseDate(operand)
	return ok1 && ok2 && v.Before(o)
}

func dateLessThanEquals(value, operand string) bool {
	v, ok1 := parseDate(value)
	o, ok2 := parseDate(operand)
	return ok1 && ok2 && !v.After(o)
}

func dateGreaterThan(value, operand string) bool {
	v, ok1 := parseDate(value)
	o, ok2 := parseDate(operand)
	return ok1 && ok2 && v.After(o)
}

func dateGreaterThanEquals(value, operand string) bool {
	v, ok1 := parseDate(value)
	o, ok2 := parseDate(operand)
	return ok1 && ok2 && !v.Before(o)
}

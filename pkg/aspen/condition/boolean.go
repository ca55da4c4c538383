package condition

import "strconv"

func boolEquals(value, operand string) bool {
	v, err1 := strconv.ParseBool(value)
	o, err2 := strconv.ParseBool(operand)
	return err1 == nil && err2 == nil && v == o
}

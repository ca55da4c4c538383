package condition

import (
	"strings"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/pattern"
)

func stringEquals(value, operand string) bool {
	return value == operand
}

func stringEqualsIgnoreCase(value, operand string) bool {
	return strings.EqualFold(value, operand)
}

func stringLike(value, operand string) bool {
	return pattern.Matches(operand, value, true)
}

package condition

import "github.com/piwi3910/nebulaio-aspen/pkg/aspen/pattern"

// arnLike backs both ArnLike and ArnEquals (they are aliases per spec):
// segment-aware wildcard matching across the six ARN fields.
func arnLike(value, operand string) bool {
	return pattern.MatchesARN(operand, value, true)
}

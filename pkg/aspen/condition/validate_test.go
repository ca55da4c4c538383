package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOperandAcceptsWellFormedOperands(t *testing.T) {
	cases := []struct {
		operator string
		operand  string
	}{
		{"NumericEquals", "5"},
		{"NumericLessThan", "3.14"},
		{"DateEquals", "2026-01-01T00:00:00Z"},
		{"DateGreaterThan", "1700000000"},
		{"Bool", "true"},
		{"BinaryEquals", "aGVsbG8="},
		{"IpAddress", "203.0.113.0/24"},
		{"IpAddress", "203.0.113.5"},
		{"StringEquals", "anything goes"},
		{"StringLike", "*"},
		{"ArnLike", "arn:aws:s3:::bucket/*"},
	}
	for _, tc := range cases {
		t.Run(tc.operator+"/"+tc.operand, func(t *testing.T) {
			op, err := Parse(tc.operator)
			require.NoError(t, err)
			assert.NoError(t, ValidateOperand(op, tc.operand))
		})
	}
}

func TestValidateOperandRejectsMalformedOperands(t *testing.T) {
	cases := []struct {
		operator string
		operand  string
	}{
		{"NumericEquals", "not-a-number"},
		{"DateEquals", "not-a-date"},
		{"Bool", "maybe"},
		{"BinaryEquals", "not base64!!"},
		{"IpAddress", "not-an-ip"},
		{"IpAddress", "203.0.113.0/999"},
	}
	for _, tc := range cases {
		t.Run(tc.operator+"/"+tc.operand, func(t *testing.T) {
			op, err := Parse(tc.operator)
			require.NoError(t, err)
			assert.Error(t, ValidateOperand(op, tc.operand))
		})
	}
}

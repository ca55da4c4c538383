package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseOperators(t *testing.T) {
	cases := []struct {
		name     string
		wantBase Base
		wantNeg  bool
	}{
		{"StringEquals", BaseStringEquals, false},
		{"StringNotEquals", BaseStringEquals, true},
		{"StringEqualsIgnoreCase", BaseStringEqualsIgnoreCase, false},
		{"StringLike", BaseStringLike, false},
		{"StringNotLike", BaseStringLike, true},
		{"NumericEquals", BaseNumericEquals, false},
		{"NumericLessThanEquals", BaseNumericLessThanEquals, false},
		{"DateGreaterThan", BaseDateGreaterThan, false},
		{"Bool", BaseBool, false},
		{"BinaryEquals", BaseBinaryEquals, false},
		{"IpAddress", BaseIPAddress, false},
		{"NotIpAddress", BaseIPAddress, true},
		{"ArnLike", BaseArnLike, false},
		{"ArnEquals", BaseArnLike, false},
		{"ArnNotLike", BaseArnLike, true},
		{"ArnNotEquals", BaseArnLike, true},
		{"Null", BaseNull, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := Parse(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.wantBase, op.Base)
			assert.Equal(t, tc.wantNeg, op.Negated)
			assert.Equal(t, NoQualifier, op.Qualifier)
			assert.False(t, op.IfExists)
		})
	}
}

func TestParseQualifiedAndIfExists(t *testing.T) {
	op, err := Parse("ForAnyValue:StringEquals")
	require.NoError(t, err)
	assert.Equal(t, ForAnyValue, op.Qualifier)
	assert.Equal(t, BaseStringEquals, op.Base)

	op, err = Parse("ForAllValues:StringNotEqualsIfExists")
	require.NoError(t, err)
	assert.Equal(t, ForAllValues, op.Qualifier)
	assert.Equal(t, BaseStringEquals, op.Base)
	assert.True(t, op.Negated)
	assert.True(t, op.IfExists)

	op, err = Parse("NumericLessThanEqualsIfExists")
	require.NoError(t, err)
	assert.True(t, op.IfExists)
	assert.Equal(t, BaseNumericLessThanEquals, op.Base)
}

func TestParseRejectsUnknownOperator(t *testing.T) {
	_, err := Parse("StringContains")
	assert.Error(t, err)
}

func TestParseRejectsNullWithModifiers(t *testing.T) {
	_, err := Parse("NullIfExists")
	assert.Error(t, err)
	_, err = Parse("ForAnyValue:Null")
	assert.Error(t, err)
}

func TestEvaluateBasicMatch(t *testing.T) {
	op, err := Parse("StringEquals")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"GET"}, true, []string{"GET", "PUT"}))
	assert.False(t, op.Evaluate([]string{"DELETE"}, true, []string{"GET", "PUT"}))
}

func TestEvaluateNegatedMatch(t *testing.T) {
	op, err := Parse("StringNotEquals")
	require.NoError(t, err)
	assert.False(t, op.Evaluate([]string{"GET"}, true, []string{"GET", "PUT"}))
	assert.True(t, op.Evaluate([]string{"DELETE"}, true, []string{"GET", "PUT"}))
}

func TestEvaluateMissingKeyWithoutIfExistsIsFalseEvenWhenNegated(t *testing.T) {
	op, err := Parse("StringNotEquals")
	require.NoError(t, err)
	assert.False(t, op.Evaluate(nil, false, []string{"GET"}))
}

func TestEvaluateMissingKeyWithIfExistsIsTrue(t *testing.T) {
	op, err := Parse("StringNotEqualsIfExists")
	require.NoError(t, err)
	assert.True(t, op.Evaluate(nil, false, []string{"GET"}))
}

func TestEvaluateForAllValuesOnMissingKeyIsVacuouslyTrue(t *testing.T) {
	op, err := Parse("ForAllValues:StringEquals")
	require.NoError(t, err)
	assert.True(t, op.Evaluate(nil, false, []string{"GET"}))
}

func TestEvaluateForAllValuesRequiresEveryValueToMatch(t *testing.T) {
	op, err := Parse("ForAllValues:StringEquals")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"GET", "PUT"}, true, []string{"GET", "PUT"}))
	assert.False(t, op.Evaluate([]string{"GET", "DELETE"}, true, []string{"GET", "PUT"}))
}

func TestEvaluateForAnyValueRequiresOneValueToMatch(t *testing.T) {
	op, err := Parse("ForAnyValue:StringEquals")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"DELETE", "GET"}, true, []string{"GET", "PUT"}))
	assert.False(t, op.Evaluate([]string{"DELETE", "PATCH"}, true, []string{"GET", "PUT"}))
}

func TestEvaluateNull(t *testing.T) {
	op, err := Parse("Null")
	require.NoError(t, err)
	assert.True(t, op.Evaluate(nil, false, []string{"true"}))
	assert.False(t, op.Evaluate(nil, true, []string{"true"}))
	assert.True(t, op.Evaluate([]string{"x"}, true, []string{"false"}))
	assert.False(t, op.Evaluate(nil, false, []string{"false"}))
}

func TestEvaluateNumericDegradesOnMalformedRequestValue(t *testing.T) {
	op, err := Parse("NumericEquals")
	require.NoError(t, err)
	assert.False(t, op.Evaluate([]string{"not-a-number"}, true, []string{"5"}))
}

func TestEvaluateDateComparisons(t *testing.T) {
	op, err := Parse("DateGreaterThan")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"2026-06-01T00:00:00Z"}, true, []string{"2026-01-01T00:00:00Z"}))
	assert.False(t, op.Evaluate([]string{"2025-01-01T00:00:00Z"}, true, []string{"2026-01-01T00:00:00Z"}))
}

func TestEvaluateDateAcceptsEpochSeconds(t *testing.T) {
	op, err := Parse("DateEquals")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"1700000000"}, true, []string{"1700000000"}))
}

func TestEvaluateIPAddress(t *testing.T) {
	op, err := Parse("IpAddress")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"203.0.113.5"}, true, []string{"203.0.113.0/24"}))
	assert.False(t, op.Evaluate([]string{"198.51.100.5"}, true, []string{"203.0.113.0/24"}))

	notOp, err := Parse("NotIpAddress")
	require.NoError(t, err)
	assert.False(t, notOp.Evaluate([]string{"203.0.113.5"}, true, []string{"203.0.113.0/24"}))
}

func TestEvaluateArnLike(t *testing.T) {
	op, err := Parse("ArnLike")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"arn:aws:s3:::bucket/key"}, true, []string{"arn:aws:s3:::bucket/*"}))
	assert.False(t, op.Evaluate([]string{"arn:aws:s3:::other/key"}, true, []string{"arn:aws:s3:::bucket/*"}))
}

func TestEvaluateBinaryEquals(t *testing.T) {
	op, err := Parse("BinaryEquals")
	require.NoError(t, err)
	// base64 of "hello"
	assert.True(t, op.Evaluate([]string{"aGVsbG8="}, true, []string{"aGVsbG8="}))
	assert.False(t, op.Evaluate([]string{"aGVsbG8="}, true, []string{"d29ybGQ="}))
}

func TestEvaluateBool(t *testing.T) {
	op, err := Parse("Bool")
	require.NoError(t, err)
	assert.True(t, op.Evaluate([]string{"true"}, true, []string{"true"}))
	assert.False(t, op.Evaluate([]string{"true"}, true, []string{"false"}))
}

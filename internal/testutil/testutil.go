// Package testutil provides shared test fixtures and assertion helpers
// for Aspen unit tests, centralizing common request/policy construction
// the way the teacher's testutil package centralized mock construction.
//
// Usage:
//
//	import (
//		"github.com/piwi3910/nebulaio-aspen/internal/testutil"
//		"github.com/stretchr/testify/require"
//	)
//
//	func TestSomething(t *testing.T) {
//		pol := testutil.MustParsePolicy(t, testutil.SingleStatementAllowAll)
//		req := testutil.NewRequest("arn:aws:iam::123456789012:user/alice", "s3:GetObject", "arn:aws:s3:::bucket/key")
//		require.Equal(t, aspen.DecisionAllow, pol.Evaluate(req))
//	}
package testutil

import (
	"strings"
	"testing"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
)

// ContainsString checks if the string s contains the substring substr.
func ContainsString(s, substr string) bool {
	return strings.Contains(s, substr)
}

// ContainsStringInsensitive checks if s contains substr, case-insensitive.
func ContainsStringInsensitive(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MustParsePolicy parses raw into a Policy, failing the test immediately
// on any error so fixture setup stays a one-liner in test bodies.
func MustParsePolicy(t *testing.T, raw string) aspen.Policy {
	t.Helper()
	pol, err := aspen.ParsePolicy([]byte(raw))
	if err != nil {
		t.Fatalf("MustParsePolicy: %v\ndocument:\n%s", err, raw)
	}
	return pol
}

// NewRequest builds a Request for an AWS-kind principal identified by id,
// covering the common case of tests that don't care about other
// principal kinds or context values.
func NewRequest(id, action, resource string) aspen.Request {
	return aspen.NewRequest(principal.Identity{Kind: principal.AWS, ID: id}, action, resource)
}

// Fixture policy documents exercised across the test suite, named for
// the behavior they pin down rather than any particular test file.

// SingleStatementAllowAll allows any action on any resource.
const SingleStatementAllowAll = `{
	"Version": "2012-10-17",
	"Statement": {
		"Effect": "Allow",
		"Action": "*",
		"Resource": "*"
	}
}`

// AllowGetDenyDeleteOnSameResource exercises Deny-overrides-Allow: one
// statement allows a wide action set, a second denies a narrower one
// that overlaps it.
const AllowGetDenyDeleteOnSameResource = `{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Sid": "AllowRead",
			"Effect": "Allow",
			"Action": ["s3:GetObject", "s3:ListBucket"],
			"Resource": "arn:aws:s3:::example-bucket/*"
		},
		{
			"Sid": "DenyDelete",
			"Effect": "Deny",
			"Action": "s3:DeleteObject",
			"Resource": "arn:aws:s3:::example-bucket/*"
		}
	]
}`

// IPRestrictedAllow allows an action only when aws:SourceIp falls within
// the given condition operand, exercising condition-gated Allow.
const IPRestrictedAllow = `{
	"Version": "2012-10-17",
	"Statement": {
		"Effect": "Allow",
		"Action": "s3:GetObject",
		"Resource": "arn:aws:s3:::example-bucket/*",
		"Condition": {
			"IpAddress": {
				"aws:SourceIp": "203.0.113.0/24"
			}
		}
	}
}`

package aspen_test

import (
	"testing"

	. "github.com/piwi3910/nebulaio-aspen/pkg/aspen"

	"github.com/piwi3910/nebulaio-aspen/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPolicySetEvaluateDenyOverridesAcrossPolicies(t *testing.T) {
	identity := testutil.MustParsePolicy(t, testutil.SingleStatementAllowAll)
	resource := testutil.MustParsePolicy(t, `{
		"Version":"2012-10-17",
		"Statement":{"Sid":"DenyDelete","Effect":"Deny","Action":"s3:DeleteObject","Resource":"*"}
	}`)

	set := NewPolicySet()
	set.Put("identity", identity)
	set.Put("resource", resource)

	allowReq := testutil.NewRequest("alice", "s3:GetObject", "arn:aws:s3:::bucket/key")
	assert.Equal(t, DecisionAllow, set.Evaluate(allowReq))

	denyReq := testutil.NewRequest("alice", "s3:DeleteObject", "arn:aws:s3:::bucket/key")
	assert.Equal(t, DecisionDeny, set.Evaluate(denyReq))
}

func TestPolicySetNamesPreservesInsertionOrder(t *testing.T) {
	set := NewPolicySet()
	set.Put("b", Policy{})
	set.Put("a", Policy{})
	set.Put("b", Policy{}) // re-putting an existing name doesn't reorder it
	assert.Equal(t, []string{"b", "a"}, set.Names())
}

func TestPolicySetEvaluateDefaultDenyWhenEmpty(t *testing.T) {
	set := NewPolicySet()
	req := testutil.NewRequest("alice", "s3:GetObject", "arn:aws:s3:::bucket/key")
	assert.Equal(t, DefaultDeny, set.Evaluate(req))
}

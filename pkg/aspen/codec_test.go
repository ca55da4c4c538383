package aspen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementUnmarshalRequiresEffect(t *testing.T) {
	var s Statement
	err := json.Unmarshal([]byte(`{"Action":"*","Resource":"*"}`), &s)
	assert.Error(t, err)
}

func TestStatementUnmarshalRejectsBothActionAndNotAction(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Allow","Action":"s3:*","NotAction":"s3:Delete*","Resource":"*"}`
	assert.Error(t, json.Unmarshal([]byte(raw), &s))
}

func TestStatementUnmarshalRequiresExactlyOneActionField(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Allow","Resource":"*"}`
	assert.Error(t, json.Unmarshal([]byte(raw), &s))
}

func TestStatementUnmarshalAcceptsNotActionAndNotResource(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Deny","NotAction":"s3:GetObject","NotResource":"arn:aws:s3:::public/*"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.True(t, s.Action.Negated)
	assert.True(t, s.Resource.Negated)
}

func TestStatementUnmarshalRejectsBothPrincipalAndNotPrincipal(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Allow","Action":"*","Resource":"*","Principal":"*","NotPrincipal":"*"}`
	assert.Error(t, json.Unmarshal([]byte(raw), &s))
}

func TestStatementUnmarshalPrincipalOptional(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Allow","Action":"*","Resource":"*"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Nil(t, s.Principal)
}

func TestStatementMarshalRoundTripsNegatedFields(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Deny","NotAction":"s3:GetObject","NotResource":"arn:aws:s3:::public/*"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestStatementUnmarshalRejectsEmptyAction(t *testing.T) {
	var s Statement
	raw := `{"Effect":"Allow","Action":[],"Resource":"*"}`
	assert.Error(t, json.Unmarshal([]byte(raw), &s))
}

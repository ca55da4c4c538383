package aspen

import (
	"encoding/json"
	"testing"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalSetUnmarshalWildcardLiteral(t *testing.T) {
	var set PrincipalSet
	require.NoError(t, json.Unmarshal([]byte(`"*"`), &set))
	assert.Equal(t, PrincipalSet{principal.AWS: NewStringSet("*")}, set)
}

func TestPrincipalSetUnmarshalObjectForm(t *testing.T) {
	var set PrincipalSet
	raw := `{"AWS": ["arn:aws:iam::123456789012:user/alice"], "Service": "ec2.amazonaws.com"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &set))
	assert.Equal(t, []string{"arn:aws:iam::123456789012:user/alice"}, set[principal.AWS].Values)
	assert.Equal(t, []string{"ec2.amazonaws.com"}, set[principal.Service].Values)
}

func TestPrincipalSetUnmarshalRejectsUnknownKind(t *testing.T) {
	var set PrincipalSet
	err := json.Unmarshal([]byte(`{"Bogus": "x"}`), &set)
	assert.Error(t, err)
}

func TestPrincipalSetUnmarshalRejectsNonWildcardScalar(t *testing.T) {
	var set PrincipalSet
	err := json.Unmarshal([]byte(`"not-a-wildcard"`), &set)
	assert.Error(t, err)
}

func TestPrincipalSetMarshalCollapsesWildcard(t *testing.T) {
	set := PrincipalSet{principal.AWS: NewStringSet("*")}
	b, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `"*"`, string(b))
}

func TestPrincipalSetMarshalObjectForm(t *testing.T) {
	set := PrincipalSet{principal.AWS: NewStringSet("arn:aws:iam::123456789012:user/alice")}
	b, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AWS":"arn:aws:iam::123456789012:user/alice"}`, string(b))
}

func TestPrincipalSetMatchesWildcard(t *testing.T) {
	set := PrincipalSet{principal.AWS: NewStringSet("*")}
	assert.True(t, set.Matches(principal.Identity{Kind: principal.Federated, ID: "anything"}))
}

func TestPrincipalSetMatchesByKindAndPattern(t *testing.T) {
	set := PrincipalSet{principal.AWS: NewStringSet("arn:aws:iam::123456789012:user/*")}
	assert.True(t, set.Matches(principal.Identity{Kind: principal.AWS, ID: "arn:aws:iam::123456789012:user/alice"}))
	assert.False(t, set.Matches(principal.Identity{Kind: principal.AWS, ID: "arn:aws:iam::999999999999:user/alice"}))
	assert.False(t, set.Matches(principal.Identity{Kind: principal.Federated, ID: "arn:aws:iam::123456789012:user/alice"}))
}

package principal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeySet satisfies oidc.KeySet without doing any real cryptographic
// verification: it decodes the JWT payload segment directly. This lets the
// test build an *oidc.IDToken without a real signing key, matching the
// contract FromOIDCIDToken depends on (a token that already passed
// (*oidc.IDTokenVerifier).Verify).
type fakeKeySet struct{}

func (fakeKeySet) VerifySignature(_ context.Context, jwt string) ([]byte, error) {
	parts := strings.Split(jwt, ".")
	return base64.RawURLEncoding.DecodeString(parts[1])
}

func buildUnsignedIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := map[string]any{"alg": "RS256", "typ": "JWT"}
	headerJSON, err := json.Marshal(header)
	require.NoError(t, err)
	claimsJSON, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(claimsJSON) + ".sig"
}

func TestFromOIDCIDToken(t *testing.T) {
	issuer := "https://idp.example.com"
	raw := buildUnsignedIDToken(t, map[string]any{
		"iss":    issuer,
		"sub":    "user-789",
		"aud":    "any-client",
		"exp":    time.Now().Add(time.Hour).Unix(),
		"iat":    time.Now().Unix(),
		"email":  "alice@example.com",
		"groups": []string{"admins", "engineers"},
	})

	verifier := oidc.NewVerifier(issuer, fakeKeySet{}, &oidc.Config{SkipClientIDCheck: true})
	idToken, err := verifier.Verify(context.Background(), raw)
	require.NoError(t, err)

	id, err := FromOIDCIDToken(idToken)
	require.NoError(t, err)

	assert.Equal(t, Federated, id.Kind)
	assert.Equal(t, issuer+"/user-789", id.ID)
	assert.Equal(t, "alice@example.com", id.Tags["email"])
	assert.Equal(t, "admins", id.Tags["group.0"])
	assert.Equal(t, "engineers", id.Tags["group.1"])
}

package principal

import (
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// oidcClaims is the subset of an ID token's claims used to build a
// Federated identity, mirroring the ClaimsMapping an OIDC provider
// applies when turning a verified token into a session.
type oidcClaims struct {
	Subject string            `json:"sub"`
	Groups  []string          `json:"groups"`
	Email   string            `json:"email"`
	Tags    map[string]string `json:"-"`
}

// FromOIDCIDToken builds a Federated Identity from a verified OIDC ID
// token, keyed "<issuer>/<subject>" the way a federated principal ARN
// identifies an external identity provider's caller. idToken must already
// have passed (*oidc.IDTokenVerifier).Verify.
func FromOIDCIDToken(idToken *oidc.IDToken) (Identity, error) {
	var claims oidcClaims
	if err := idToken.Claims(&claims); err != nil {
		return Identity{}, fmt.Errorf("principal: decode OIDC claims: %w", err)
	}

	tags := map[string]string{}
	if claims.Email != "" {
		tags["email"] = claims.Email
	}
	for i, g := range claims.Groups {
		tags[fmt.Sprintf("group.%d", i)] = g
	}

	return Identity{
		Kind: Federated,
		ID:   fmt.Sprintf("%s/%s", idToken.Issuer, claims.Subject),
		Tags: tags,
	}, nil
}

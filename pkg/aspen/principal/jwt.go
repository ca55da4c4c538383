package principal

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload shape a host's access-token issuer stamps,
// mirroring the AccessKeyID/role/account claims an S3-compatible gateway
// carries on its bearer tokens.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string            `json:"user_id"`
	Username  string            `json:"username"`
	AccountID string            `json:"account_id"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// FromJWTClaims builds an AWS-kind Identity from already-verified JWT
// claims. Verification (signature, expiry) is the caller's
// responsibility; this only shapes the claims into an Identity.
func FromJWTClaims(claims *Claims) Identity {
	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	return Identity{Kind: AWS, ID: id, Tags: claims.Tags}
}

package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the CLI can learn from a token without the signing key.
type Claims struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role,omitempty"`
	IssuedAt  time.Time `json:"issuedAt,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the token carries an expiry that is not after now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !c.ExpiresAt.After(now)
}

// Inspect decodes JWT claims without verifying the signature. The backend is
// the only party that can verify; this is for display and expiry hints.
func Inspect(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	for _, k := range []string{"role", "roles", "authorities"} {
		switch v := claims[k].(type) {
		case string:
			out.Role = v
		case []interface{}:
			if len(v) > 0 {
				out.Role = fmt.Sprint(v[0])
			}
		}
		if out.Role != "" {
			break
		}
	}
	return out, nil
}

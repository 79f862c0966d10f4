package credentials

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned by Inspect for values that are not JWTs.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the displayable subset of an ID token's payload.
type Claims struct {
	Subject   string
	Name      string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp is set and before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Inspect decodes the claims of a JWT without verifying its signature. The
// backend is the only party that verifies tokens; this is for `whoami`.
func Inspect(token string) (Claims, error) {
	var c idTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	out := Claims{Subject: c.Subject, Name: c.Name, Email: c.Email}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}

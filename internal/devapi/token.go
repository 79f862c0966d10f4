package devapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirror the fields of an ID token the client displays.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Identity is the user a token is minted for.
type Identity struct {
	UID   string
	Name  string
	Email string
}

// Mint signs an HS256 token for id that expires after ttl.
func Mint(secretKey []byte, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  id.Name,
		Email: id.Email,
	})

	return token.SignedString(secretKey)
}

// Verifier checks tokens minted with the same secret.
type Verifier struct {
	secretKey []byte
}

func NewVerifier(secretKey []byte) *Verifier {
	return &Verifier{secretKey: secretKey}
}

// Verify returns the claims of a valid, unexpired token with a subject.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return v.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return tok
}

func TestInspect_ReadsClaimsWithoutVerifying(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, idTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-1", ExpiresAt: jwt.NewNumericDate(exp)},
		Name:             "Ada",
		Email:            "ada@example.com",
	})

	c, err := Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", c.Subject)
	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, "ada@example.com", c.Email)
	assert.True(t, exp.Equal(c.ExpiresAt))
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(exp.Add(time.Second)))
}

func TestInspect_NoExpiry(t *testing.T) {
	tok := signed(t, jwt.RegisteredClaims{Subject: "uid-2"})

	c, err := Inspect(tok)
	require.NoError(t, err)
	assert.True(t, c.ExpiresAt.IsZero())
	assert.False(t, c.Expired(time.Now()))
}

func TestInspect_Malformed(t *testing.T) {
	_, err := Inspect("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformedToken)
}

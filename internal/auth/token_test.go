package auth_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notably-dev/notably/internal/auth"
)

func TestAllowAny(t *testing.T) {
	v := auth.AllowAny{}

	assert.True(t, v.Validate("anything"))
	assert.True(t, v.Validate("x"))
	assert.False(t, v.Validate(""))
}

func TestJWTRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := auth.GenerateJWT(secret, "ada")
	require.NoError(t, err)

	v := auth.NewJWT(secret)
	assert.True(t, v.Validate(token))
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := auth.GenerateJWT("secret-a", "ada")
	require.NoError(t, err)

	v := auth.NewJWT("secret-b")
	assert.False(t, v.Validate(token))
}

func TestJWTRejectsGarbage(t *testing.T) {
	v := auth.NewJWT("secret")

	assert.False(t, v.Validate("not-a-jwt"))
	assert.False(t, v.Validate(""))
}

func TestJWTRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "ada"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	v := auth.NewJWT("secret")
	assert.False(t, v.Validate(token))
}

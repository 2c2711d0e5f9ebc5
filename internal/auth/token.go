package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator decides whether a bearer credential is acceptable. The
// gate has already rejected empty credentials before a validator runs.
type TokenValidator interface {
	Validate(token string) bool
}

// AllowAny accepts every non-empty token. This is the documented contract
// of the public API today: possession of any bearer token passes the gate.
type AllowAny struct{}

func (AllowAny) Validate(token string) bool {
	return token != ""
}

// JWT verifies HMAC-signed tokens. Opt-in via AUTH_MODE=jwt.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

func (j *JWT) Validate(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.secret, nil
	})

	return err == nil && token.Valid
}

// GenerateJWT signs a token for the given subject. The server never issues
// tokens itself; this exists for operators and tests running in jwt mode.
func GenerateJWT(secret, subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

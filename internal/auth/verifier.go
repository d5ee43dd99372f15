// Package auth implements the credential-verification collaborator: it checks
// the bearer token attached to a request and produces the caller's identity.
// The rest of the application never inspects token contents itself.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity extracted from a verified token.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates a raw bearer token and returns the identity it
// carries. Implementations must treat any verification failure (bad
// signature, expiry, malformed token) as an error.
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// JWTVerifier verifies HS256-signed tokens with a shared secret.
type JWTVerifier struct {
	secretKey []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secretKey: []byte(secret)}
}

// Verify parses and validates the token, rejecting any signing method other
// than HMAC so an attacker cannot downgrade to "none" or an asymmetric alg.
func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Package auth implements token issuance/verification and password
// hashing for the identity layer.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campus-hub/campus-events/internal/apperr"
)

// TokenManager issues and verifies access tokens. Only the HMAC family
// is supported; the algorithm name comes from configuration.
type TokenManager struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

// NewTokenManager builds a TokenManager. algorithm must name an HMAC
// signing method (HS256, HS384, HS512).
func NewTokenManager(secret, algorithm string, lifetime time.Duration) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &TokenManager{secret: []byte(secret), method: method, lifetime: lifetime}, nil
}

// Issue creates a signed token whose subject is the user id.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
	}
	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string and returns the subject
// user id. Failures are InvalidStateError with the same two messages the
// callers surface: "Token expired" and "Invalid token".
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.InvalidState("Token expired")
		}
		return "", apperr.InvalidState("Invalid token")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", apperr.InvalidState("Invalid token")
	}
	if claims.Subject == "" {
		return "", apperr.InvalidState("Token subject missing")
	}
	return claims.Subject, nil
}

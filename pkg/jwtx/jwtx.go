// Package jwtx wraps golang-jwt with the small HS256 surface this service
// needs: one shared-secret signer that both mints and verifies access tokens.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpiredToken = errors.New("jwtx: token expired")
)

// Verifier validates a raw compact token and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared secret.
type HS256 struct {
	secret []byte
	issuer string
}

func NewHS256(secret []byte, issuer string) *HS256 {
	return &HS256{secret: secret, issuer: issuer}
}

// Mint signs an access token for the given subject.
func (h *HS256) Mint(subject, username string, admin bool, ttl time.Duration) (string, error) {
	claims := NewAccessClaims(subject, username, admin, h.issuer, ttl, time.Now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// Verify parses and validates a raw token, enforcing the signing method,
// issuer and expiry.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return h.secret, nil
	}, jwt.WithIssuer(h.issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

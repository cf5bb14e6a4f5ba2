package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a token can fail validation: bad
// signature, wrong algorithm, structural corruption, or expiry. One error
// for all of them so callers can't build an oracle out of the difference.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by an access token. Subject is the identity's email.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates HMAC-signed bearer tokens. The signing
// key, algorithm, and lifetime are fixed at construction so tests can inject
// deterministic values and a missing key fails at startup, not per request.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

// NewTokenService validates the signing configuration once. An empty secret
// or a non-HMAC algorithm is a fatal configuration error.
func NewTokenService(secret, algorithm string, lifetime time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing key is not configured")
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q: must be HS256, HS384, or HS512", algorithm)
	}
	return &TokenService{secret: []byte(secret), method: method, lifetime: lifetime}, nil
}

// Issue returns a signed token for subject expiring lifetime from now.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(s.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	})
	return token.SignedString(s.secret)
}

// Validate checks the signature before trusting any claim, then the expiry.
// Every failure comes back as ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Never accept a token that names a different algorithm than the
		// one we sign with, even another HMAC variant.
		if t.Method.Alg() != s.method.Alg() {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

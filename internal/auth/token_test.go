package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, lifetime time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, "HS256", lifetime)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", "HS256", time.Hour)
	assert.Error(t, err)
}

func TestNewTokenService_NonHMACAlgorithm(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{"RS256", "none", "bogus"} {
		_, err := NewTokenService("secret", alg, time.Hour)
		assert.Error(t, err, "algorithm %q should be rejected", alg)
	}
}

func TestTokenService_IssueValidate(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret", time.Hour)

	tok, err := svc.Issue("ann@x.com")
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", claims.Subject)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret", -1*time.Second)

	tok, err := svc.Issue("ann@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongKey(t *testing.T) {
	t.Parallel()

	issuer := newTestTokenService(t, "right-secret", time.Hour)
	verifier := newTestTokenService(t, "wrong-secret", time.Hour)

	tok, err := issuer.Issue("ann@x.com")
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Tampered(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret", time.Hour)

	tok, err := svc.Issue("ann@x.com")
	require.NoError(t, err)

	// Flip a character in the payload segment. The failure must be the
	// same error kind as expiry: no distinguishing signal.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, "super-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

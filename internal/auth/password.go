package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCredentialFormat is returned when a stored credential is not a valid
// bcrypt hash. Callers treat it as a verification failure, never a crash.
var ErrCredentialFormat = errors.New("malformed stored credential")

// PasswordHasher wraps bcrypt with a configured cost. bcrypt salts every
// hash itself and compares in constant time.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given cost. A cost of 0 (or
// anything below bcrypt's minimum) falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the one-way bcrypt hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored credential. A
// mismatch is (false, nil); a credential that is not a bcrypt hash at all is
// (false, ErrCredentialFormat).
func (h *PasswordHasher) Verify(plaintext, credential string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCredentialFormat
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(0)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	ok, err := h.Verify("pw123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_Mismatch(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(0)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)

	ok, err := h.Verify("not-pw123", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(0)

	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so equal inputs yield distinct hashes.
	assert.NotEqual(t, h1, h2)
}

func TestPasswordHasher_MalformedCredential(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(0)

	ok, err := h.Verify("pw123", "not-a-bcrypt-hash")
	assert.ErrorIs(t, err, ErrCredentialFormat)
	assert.False(t, ok)
}

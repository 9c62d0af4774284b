package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltUniqueness(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("Pa$$w0rd")
	require.NoError(t, err)

	second, err := HashPassword("Pa$$w0rd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		ok, err := VerifyPassword("Pa$$w0rd", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := VerifyPassword("battery staple", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_UndecodableHash(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("anything", "not-an-encoded-hash")
	require.Error(t, err)
}

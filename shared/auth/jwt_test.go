package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAuthenticator() JWTAuthenticator {
	return NewJWTAuthenticator("test-app", "test-app")
}

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	a := newTestAuthenticator()

	token, err := a.GenerateSessionToken("user-123", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := a.ValidateSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionToken_SubjectBinding(t *testing.T) {
	t.Parallel()

	a := newTestAuthenticator()

	tokenA, err := a.GenerateSessionToken("user-a", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := a.ValidateSessionToken(tokenA, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, "user-b", claims.Subject)
}

func TestSessionToken_Expired(t *testing.T) {
	t.Parallel()

	a := newTestAuthenticator()

	token, err := a.GenerateSessionToken("user-123", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = a.ValidateSessionToken(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	a := newTestAuthenticator()

	token, err := a.GenerateSessionToken("user-123", "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = a.ValidateSessionToken(token, "wrong-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Tampered(t *testing.T) {
	t.Parallel()

	a := newTestAuthenticator()

	token, err := a.GenerateSessionToken("user-123", testSecret, time.Hour)
	require.NoError(t, err)

	// Flip one byte in the payload segment.
	raw := []byte(token)
	mid := len(raw) / 2
	if raw[mid] == 'A' {
		raw[mid] = 'B'
	} else {
		raw[mid] = 'A'
	}

	_, err = a.ValidateSessionToken(string(raw), testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	a := newTestAuthenticator()

	for _, tokenString := range []string{"", "garbage", "not.a.jwt"} {
		_, err := a.ValidateSessionToken(tokenString, testSecret)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestSessionToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	other := NewJWTAuthenticator("other-app", "other-app")
	token, err := other.GenerateSessionToken("user-123", testSecret, time.Hour)
	require.NoError(t, err)

	a := newTestAuthenticator()
	_, err = a.ValidateSessionToken(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService() *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:   "test-secret",
		SessionExp:  24 * time.Hour,
		RememberExp: 720 * time.Hour,
		TokenIssuer: "skilltrack.test",
	})
}

func TestSessionService_GenerateAndValidate(t *testing.T) {
	svc := newTestSessionService()

	token, lifetime, err := svc.GenerateToken(42, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, lifetime)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.StudentID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "skilltrack.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionService_RememberExtendsLifetime(t *testing.T) {
	svc := newTestSessionService()

	_, normal, err := svc.GenerateToken(42, "alice", false)
	require.NoError(t, err)
	_, remembered, err := svc.GenerateToken(42, "alice", true)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, normal)
	assert.Equal(t, 720*time.Hour, remembered)
}

func TestSessionService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestSessionService()
	token, _, err := svc.GenerateToken(42, "alice", false)
	require.NoError(t, err)

	other := NewSessionService(SessionConfig{
		SecretKey:   "different-secret",
		SessionExp:  24 * time.Hour,
		RememberExp: 720 * time.Hour,
		TokenIssuer: "skilltrack.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestSessionService_ValidateToken_Expired(t *testing.T) {
	expired := NewSessionService(SessionConfig{
		SecretKey:   "test-secret",
		SessionExp:  -time.Hour,
		RememberExp: -time.Hour,
		TokenIssuer: "skilltrack.test",
	})

	token, _, err := expired.GenerateToken(42, "alice", false)
	require.NoError(t, err)

	_, err = expired.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestSessionService()

	_, err := svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

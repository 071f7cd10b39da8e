package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateToken("user-1", "reader@example.com", "Reader", true)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.True(t, claims.IsSuperuser)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	token, err := NewManager("one", time.Hour).GenerateToken("u", "e@example.com", "", false)
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewManager_DefaultExpiry(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewManager("s", 0).Expiry())
}

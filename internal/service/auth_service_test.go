package service

import (
	"testing"
	"time"

	"chatfuture/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueAndValidate(t *testing.T) {
	svc := NewAuthService("test-secret", time.Hour)

	resp, err := svc.IssueUserToken("user-42", "小王")
	require.NoError(t, err)
	assert.Equal(t, "user-42", resp.UserID)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateUserToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "小王", claims.Name)

	id, err := svc.Identity(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", id)
}

func TestAuthService_RejectsBadTokens(t *testing.T) {
	svc := NewAuthService("test-secret", time.Hour)
	other := NewAuthService("other-secret", time.Hour)

	foreign, err := other.IssueUserToken("user-42", "")
	require.NoError(t, err)

	expiring := NewAuthService("test-secret", time.Minute)
	expired, err := expiring.IssueUserToken("user-42", "")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", foreign.Token},
		{"expired", expired.Token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateUserToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)

			_, err = svc.Identity(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthService_Identity(t *testing.T) {
	svc := NewAuthService("test-secret", 0)

	id, err := svc.Identity("")
	require.NoError(t, err)
	assert.Equal(t, storage.AnonymousUser, id)

	_, err = svc.IssueUserToken("  ", "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	resp, err := svc.IssueUserToken("forever", "")
	require.NoError(t, err)
	claims, err := svc.ValidateUserToken(resp.Token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

// Rentora | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/core"
)

func newTestManager(t *testing.T, expire time.Duration) *TokenManager {
	t.Helper()

	m, err := NewTokenManager(config.AuthConfig{
		Secret:      "test-signing-secret",
		Salt:        "test-salt",
		TokenExpire: expire,
		Issuer:      "rentora",
	}, NewRevocationList())
	require.NoError(t, err)
	return m
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(config.AuthConfig{}, NewRevocationList())
	require.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.Issue("507f1f77bcf86cd799439011", "keks@htmlacademy.ru")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "keks@htmlacademy.ru", claims.Email)
}

func TestIssueDefaultsToTwoDayExpiry(t *testing.T) {
	// zero expire falls back to 48h
	m := newTestManager(t, 0)

	signed, err := m.Issue("507f1f77bcf86cd799439011", "keks@htmlacademy.ru")
	require.NoError(t, err)

	token, err := jwt.ParseInsecure([]byte(signed))
	require.NoError(t, err)

	issuedAt, ok := token.IssuedAt()
	require.True(t, ok)
	expiration, ok := token.Expiration()
	require.True(t, ok)

	assert.Equal(t, 48*time.Hour, expiration.Sub(issuedAt))
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.Issue("507f1f77bcf86cd799439011", "keks@htmlacademy.ru")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"

	_, err = m.VerifyToken(context.Background(), tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestManager(t, time.Hour)

	verifier, err := NewTokenManager(config.AuthConfig{
		Secret: "a-different-secret",
		Issuer: "rentora",
	}, NewRevocationList())
	require.NoError(t, err)

	token, err := issuer.Issue("507f1f77bcf86cd799439011", "keks@htmlacademy.ru")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := newTestManager(t, time.Millisecond)

	token, err := m.Issue("507f1f77bcf86cd799439011", "keks@htmlacademy.ru")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = m.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyRejectsRevokedToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.Issue("507f1f77bcf86cd799439011", "keks@htmlacademy.ru")
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), token)
	require.NoError(t, err)

	m.Revoke(token)

	_, err = m.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenRevoked)
}

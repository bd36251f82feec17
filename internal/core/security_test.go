// Rentora | 2026
// security_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	digest := HashPassword("secret123", "pepper")

	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret123")

	// hex-encoded sha256 output
	assert.Len(t, digest, 64)

	assert.Equal(t, digest, HashPassword("secret123", "pepper"),
		"same input and salt must be deterministic")
}

func TestHashPasswordSaltChangesDigest(t *testing.T) {
	a := HashPassword("secret123", "salt-a")
	b := HashPassword("secret123", "salt-b")

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret123", "pepper")

	assert.True(t, VerifyPassword("secret123", "pepper", digest))
	assert.False(t, VerifyPassword("wrong", "pepper", digest))
	assert.False(t, VerifyPassword("secret123", "other", digest))
	assert.False(t, VerifyPassword("secret123", "pepper", "not-a-digest"))
}

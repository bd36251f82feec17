// Rentora | 2026
// security.go

package core

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword derives the stored credential: hex(HMAC-SHA256(salt, password)).
// The salt is a single server-wide secret rather than a per-user value, so
// identical passwords hash to identical digests. That is a weakness of the
// stored credential format this service must stay compatible with, not a
// recommended scheme.
func HashPassword(password, salt string) string {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPassword recomputes the digest and compares in constant time.
func VerifyPassword(password, salt, storedDigest string) bool {
	digest := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}

// Rentora | 2026
// revocation.go

package auth

import "sync"

// RevocationList is the process-wide set of session tokens invalidated by
// logout before their natural expiry. It lives for the process lifetime
// only: a restart clears it, and tokens revoked before the restart become
// valid again until they expire. Durable revocation is out of scope.
type RevocationList struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		tokens: make(map[string]struct{}),
	}
}

func (l *RevocationList) Add(token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[token] = struct{}{}
}

func (l *RevocationList) Contains(token string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.tokens[token]
	return ok
}

func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tokens)
}

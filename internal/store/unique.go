package store

import (
	"strings"
	"sync"
)

// UniqueIndex is a set of claimed keys used to enforce uniqueness constraints
// at write time. Claim is a single atomic check-and-reserve step, so two
// concurrent writers racing on the same key see exactly one winner.
// Keys are normalized: case-insensitive, surrounding whitespace ignored.
type UniqueIndex struct {
	mu     sync.Mutex
	claims map[string]struct{}
}

// NewUniqueIndex creates an empty UniqueIndex.
func NewUniqueIndex() *UniqueIndex {
	return &UniqueIndex{
		claims: make(map[string]struct{}),
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Claim reserves the key. Returns false if it is already claimed.
func (ix *UniqueIndex) Claim(key string) bool {
	k := normalizeKey(key)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if _, taken := ix.claims[k]; taken {
		return false
	}
	ix.claims[k] = struct{}{}
	return true
}

// Release frees a previously claimed key.
func (ix *UniqueIndex) Release(key string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	delete(ix.claims, normalizeKey(key))
}

// Clear removes all claims.
func (ix *UniqueIndex) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.claims = make(map[string]struct{})
}

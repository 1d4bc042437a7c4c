package store

import "sync"

// RelationIndex maps a parent entity identifier to its dependent children.
// Appends for different parents proceed independently; appends to the same
// parent serialize on the index lock, so no entry is ever dropped.
type RelationIndex[T any] struct {
	mu       sync.RWMutex
	children map[int64][]T
}

// NewRelationIndex creates an empty RelationIndex.
func NewRelationIndex[T any]() *RelationIndex[T] {
	return &RelationIndex[T]{
		children: make(map[int64][]T),
	}
}

// Append adds a child under the given parent, creating the bucket if needed.
func (ix *RelationIndex[T]) Append(parentID int64, child T) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.children[parentID] = append(ix.children[parentID], child)
}

// ListByParent returns the children of the given parent in append order.
// The result is a copy and never nil.
func (ix *RelationIndex[T]) ListByParent(parentID int64) []T {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	bucket := ix.children[parentID]
	out := make([]T, len(bucket))
	copy(out, bucket)
	return out
}

// Remove drops the bucket for the given parent.
func (ix *RelationIndex[T]) Remove(parentID int64) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	delete(ix.children, parentID)
}

// Clear removes all buckets.
func (ix *RelationIndex[T]) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.children = make(map[int64][]T)
}

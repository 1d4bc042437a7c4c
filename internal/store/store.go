// Package store provides process-local, concurrency-safe keyed storage for
// domain entities. All state lives in memory; a store is constructed once per
// process and handed to the components that need it, which also makes test
// isolation trivial (fresh store per test).
package store

import "sync"

// Store is a keyed collection of entities of one kind. Identifiers are
// assigned by the store itself: a strictly increasing counter starting at 1.
// Identifiers are never reused within a process lifetime, even after deletes.
type Store[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	order  []int64
	nextID int64
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{
		items: make(map[int64]T),
	}
}

// Insert assigns the next identifier, calls build with it to produce the
// entity, and stores the result. The assignment and the write happen under a
// single lock, so concurrent inserts never observe the same identifier.
func (s *Store[T]) Insert(build func(id int64) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	entity := build(id)
	s.items[id] = entity
	s.order = append(s.order, id)
	return entity
}

// Get returns the entity with the given identifier.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.items[id]
	return entity, ok
}

// List returns all entities in insertion order. The returned slice is a copy
// and safe to retain.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		if entity, ok := s.items[id]; ok {
			out = append(out, entity)
		}
	}
	return out
}

// Update applies mutate to the stored entity and stores the result.
// Returns false if the identifier is absent. The read-modify-write runs under
// the store lock, so concurrent updates of the same entity never lose writes.
func (s *Store[T]) Update(id int64, mutate func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	entity = mutate(entity)
	s.items[id] = entity
	return entity, true
}

// Delete removes the entity with the given identifier. Returns false if it
// was absent. The identifier counter is not decremented.
func (s *Store[T]) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all entities and resets the identifier counter.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int64]T)
	s.order = nil
	s.nextID = 0
}

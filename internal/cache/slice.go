// Package cache mirrors backend resources in memory between full reloads.
package cache

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Snapshot is a copy of a slice's state at one point in time.
type Snapshot[T any] struct {
	Items   []*T
	Loading bool
	Err     error
}

// Slice holds the cached items of one resource kind. Items are looked up by a
// linear scan on their id; there is no index shared across slices.
type Slice[T any] struct {
	mu      sync.RWMutex
	key     func(*T) uuid.UUID
	items   []*T
	loading bool
	err     error
}

func NewSlice[T any](key func(*T) uuid.UUID) *Slice[T] {
	return &Slice[T]{key: key}
}

func (s *Slice[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot[T]{
		Items:   slices.Clone(s.items),
		Loading: s.loading,
		Err:     s.err,
	}
}

func (s *Slice[T]) Items() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// SetLoading marks a fetch in flight. Cached items stay visible meanwhile.
func (s *Slice[T]) SetLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	s.err = nil
}

// SetItems replaces the cached items and ends the fetch.
func (s *Slice[T]) SetItems(items []*T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(items)
	s.loading = false
	s.err = nil
}

// SetError ends the fetch with err, keeping the previous items.
func (s *Slice[T]) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	s.err = err
}

// Upsert replaces the item with the same id or appends it.
func (s *Slice[T]) Upsert(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.key(item)
	if i := s.index(id); i >= 0 {
		s.items[i] = item
		return
	}

	s.items = append(s.items, item)
}

// Remove drops the item with id and reports whether it was cached.
func (s *Slice[T]) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}

	s.items = slices.Delete(s.items, i, i+1)

	return true
}

func (s *Slice[T]) Find(id uuid.UUID) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}

	return nil, false
}

func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Slice[T]) index(id uuid.UUID) int {
	return slices.IndexFunc(s.items, func(item *T) bool { return s.key(item) == id })
}

package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// BuildFunc produces a fresh value for a key.
type BuildFunc[T any] func(ctx context.Context) (T, error)

// entry is a cached value and the time it was built.
type entry[T any] struct {
	value T
	built time.Time
}

// Store is a TTL cache keyed by string. Concurrent misses for the same key
// share one build through singleflight.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

// New creates a store whose entries expire after ttl.
// A zero ttl disables caching: every Get builds.
func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[T]) expired(e entry[T]) bool {
	if s.ttl == 0 {
		return true
	}
	return s.now().Sub(e.built) > s.ttl
}

// Get returns the cached value for key, building it with build when missing
// or expired.
func (s *Store[T]) Get(ctx context.Context, key string, build BuildFunc[T]) (T, error) {
	// Fast path
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && !s.expired(e) {
		return e.value, nil
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		s.mu.RLock()
		e, ok := s.entries[key]
		s.mu.RUnlock()
		if ok && !s.expired(e) {
			return e.value, nil
		}

		value, err := build(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = entry[T]{value: value, built: s.now()}
		s.mu.Unlock()

		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Invalidate removes key from the store, forcing the next Get to rebuild.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

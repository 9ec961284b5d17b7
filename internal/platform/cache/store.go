package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	sonic "github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"
)

// Backend stores encoded values under string keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Store is a read-through cache in front of a Backend. Concurrent loads of
// the same key are collapsed into one loader call. A load that overlaps an
// Invalidate is returned to its caller but never written back.
type Store struct {
	backend    Backend
	ttl        time.Duration
	flight     singleflight.Group
	generation atomic.Uint64
}

func NewStore(backend Backend, ttl time.Duration) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	return &Store{backend: backend, ttl: ttl}
}

func (s *Store) Invalidate(ctx context.Context, prefix string) error {
	if s == nil || prefix == "" {
		return nil
	}
	s.generation.Add(1)
	return s.backend.DeletePrefix(ctx, prefix)
}

// GetOrLoad returns the cached value for key, or runs loader and caches its
// result. Backend failures degrade to calling loader directly.
func GetOrLoad[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := lookup[T](ctx, s, key); ok {
		return value, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := lookup[T](ctx, s, key); ok {
			return cached, nil
		}

		generation := s.generation.Load()
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if s.generation.Load() != generation {
			return loaded, nil
		}
		if raw, err := sonic.Marshal(loaded); err == nil {
			_ = s.backend.Set(ctx, key, raw, s.ttl)
			if s.generation.Load() != generation {
				_ = s.backend.DeletePrefix(ctx, key)
			}
		}
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	out, _ := v.(T)
	return out, nil
}

func lookup[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var out T
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil || !ok {
		return out, false
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

package storage

import (
	"context"
	"sync"
)

// MemoryRepository keeps the document in process memory.
type MemoryRepository[T any] struct {
	mu    sync.RWMutex
	value *T
}

func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{}
}

func (s *MemoryRepository[T]) Load(ctx context.Context) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.value == nil {
		return nil, nil
	}
	cp := *s.value
	return &cp, nil
}

func (s *MemoryRepository[T]) Save(ctx context.Context, v *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *v
	s.value = &cp
	return nil
}

func (s *MemoryRepository[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = nil
	return nil
}

package memory

import (
	"context"
	"slices"
	"sync"
)

// Slot keeps values in process memory. Nothing survives a restart.
type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewSlot() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return slices.Clone(v), ok, nil
}

func (s *Slot) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = slices.Clone(value)
	return nil
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"eventTicketing/internal/storage"
)

type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func New() *Storage {
	return &Storage{blobs: make(map[string][]byte)}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	const op = "storage.memory.Get"

	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	out := make([]byte, len(blob))
	copy(out, blob)

	return out, nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	blob := make([]byte, len(value))
	copy(blob, value)

	s.mu.Lock()
	s.blobs[key] = blob
	s.mu.Unlock()

	return nil
}

func (s *Storage) Close() error {
	return nil
}

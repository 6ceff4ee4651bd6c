package repository

import (
	"context"
	"strings"
	"sync"
)

// KVStore es el almacenamiento clave-valor donde vive el registro vigente.
// Get devuelve ok=false cuando la clave no existe.
type KVStore interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
}

type MemoryKVStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{
		items: make(map[string]string),
	}
}

func (s *MemoryKVStore) Put(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[strings.TrimSpace(key)]
	return v, ok, nil
}

// Package memory provides an in-process port.KVStore used for development
// and tests. Contents are lost on restart.
package memory

import (
	"context"
	"strings"
	"sync"

	"perf-bi/internal/core/port"
)

// KVStore is a map guarded by a RWMutex.
type KVStore struct {
	mu sync.RWMutex
	m  map[string]string
}

var _ port.KVStore = (*KVStore)(nil)

// NewKVStore returns an empty store.
func NewKVStore() *KVStore {
	return &KVStore{m: make(map[string]string)}
}

// Get implements port.KVStore.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Put implements port.KVStore.
func (s *KVStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Delete implements port.KVStore.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// List implements port.KVStore.
func (s *KVStore) List(_ context.Context, prefix string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string)
	for k, v := range s.m {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

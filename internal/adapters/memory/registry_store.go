// Package memory contains an in-memory RegistryStore, used by tests and
// ephemeral runs where nothing should touch disk.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/registry"
)

// RegistryStore holds the current snapshot in process memory.
type RegistryStore struct {
	mu      sync.RWMutex
	current *registry.Registry
}

// NewRegistryStore creates a store holding the given initial snapshot.
func NewRegistryStore(initial *registry.Registry) *RegistryStore {
	return &RegistryStore{current: initial}
}

// Load returns the latest published snapshot.
func (s *RegistryStore) Load(ctx context.Context) (*registry.Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, fmt.Errorf("registry store is empty")
	}
	return s.current, nil
}

// Save publishes a new snapshot.
func (s *RegistryStore) Save(ctx context.Context, r *registry.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = r
	return nil
}

// Ensure RegistryStore implements the interface
var _ secondary.RegistryStore = (*RegistryStore)(nil)

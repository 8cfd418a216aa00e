// Package filesystem contains the file-backed RegistryStore: the current
// snapshot document lives in a single JSON file under the data directory.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/registry"
	"github.com/example/dispatchiq/internal/snapshot"
)

// RegistryStore persists the registry through the snapshot codec.
type RegistryStore struct {
	path string
}

// NewRegistryStore creates a store writing to the given file path.
func NewRegistryStore(path string) *RegistryStore {
	return &RegistryStore{path: path}
}

// Path returns the snapshot file location.
func (s *RegistryStore) Path() string {
	return s.path
}

// Exists reports whether a snapshot file has been written yet.
func (s *RegistryStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and decodes the snapshot file.
func (s *RegistryStore) Load(ctx context.Context) (*registry.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	reg, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", s.path, err)
	}

	return reg, nil
}

// Save encodes the registry and replaces the snapshot file atomically, so a
// crash mid-write never leaves a truncated document behind.
func (s *RegistryStore) Save(ctx context.Context, r *registry.Registry) error {
	data, err := snapshot.Encode(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".registry-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}

	return nil
}

// Ensure RegistryStore implements the interface
var _ secondary.RegistryStore = (*RegistryStore)(nil)

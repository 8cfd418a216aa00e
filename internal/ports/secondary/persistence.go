// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"

	"github.com/example/dispatchiq/internal/registry"
)

// RegistryStore holds the current registry snapshot. Load returns the latest
// published snapshot; Save publishes a new one. Services clone before
// editing, so a snapshot handed to a reader is never written again.
type RegistryStore interface {
	// Load retrieves the latest published registry snapshot.
	Load(ctx context.Context) (*registry.Registry, error)

	// Save publishes a new registry snapshot, replacing the previous one.
	Save(ctx context.Context, r *registry.Registry) error
}

// ArchiveEntry is one retained snapshot version.
type ArchiveEntry struct {
	Version   int
	Payload   []byte
	CreatedAt string
}

// SnapshotArchive retains published snapshot documents by version.
// The archive is history, not the source of truth; an append failure must
// not roll back a committed mutation.
type SnapshotArchive interface {
	// Append stores a snapshot document under its version.
	Append(ctx context.Context, version int, payload []byte) error

	// Get retrieves a retained snapshot by version.
	Get(ctx context.Context, version int) (*ArchiveEntry, error)

	// Latest retrieves the highest retained version, or nil when empty.
	Latest(ctx context.Context) (*ArchiveEntry, error)

	// List retrieves up to limit retained versions, newest first.
	List(ctx context.Context, limit int) ([]*ArchiveEntry, error)
}

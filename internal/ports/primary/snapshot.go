package primary

import "context"

// SnapshotService defines the primary port for snapshot persistence,
// import/export, and version history.
type SnapshotService interface {
	// Export serializes the current registry to its document form.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces the registry with a parsed document. Malformed input
	// fails with a ParseError and the previous registry is retained.
	Import(ctx context.Context, data []byte) error

	// ResetToSeed replaces the registry with the seed fixture.
	ResetToSeed(ctx context.Context) error

	// History lists retained snapshot versions, newest first.
	History(ctx context.Context, limit int) ([]*SnapshotVersion, error)

	// ShowVersion returns the retained document for a version.
	ShowVersion(ctx context.Context, version int) ([]byte, error)
}

// SnapshotVersion describes one retained snapshot.
type SnapshotVersion struct {
	Version   int
	CreatedAt string
	SizeBytes int
}

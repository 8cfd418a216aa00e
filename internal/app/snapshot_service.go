package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/dispatchiq/internal/ports/primary"
	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/registry"
	"github.com/example/dispatchiq/internal/snapshot"
)

// SnapshotServiceImpl implements the SnapshotService interface.
type SnapshotServiceImpl struct {
	pub    publisher
	logger *zap.Logger
	now    func() time.Time
	seed   func(time.Time) *registry.Registry
}

// NewSnapshotService creates a new SnapshotService with injected
// dependencies. The archive may be nil when no history is kept.
func NewSnapshotService(store secondary.RegistryStore, archive secondary.SnapshotArchive, logger *zap.Logger) *SnapshotServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotServiceImpl{
		pub:    publisher{store: store, archive: archive, logger: logger},
		logger: logger,
		now:    time.Now,
		seed:   registry.Seed,
	}
}

// WithSnapshotClock injects the time source (tests pass a fixed clock).
func (s *SnapshotServiceImpl) WithSnapshotClock(now func() time.Time) *SnapshotServiceImpl {
	s.now = now
	return s
}

// Export serializes the current registry to its document form.
func (s *SnapshotServiceImpl) Export(ctx context.Context) ([]byte, error) {
	reg, err := s.pub.load(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Encode(reg)
}

// Import replaces the registry with a parsed document. Malformed input
// fails with a ParseError and the previous registry is retained; the import
// is published as a new version on top of the current one.
func (s *SnapshotServiceImpl) Import(ctx context.Context, data []byte) error {
	imported, err := snapshot.Decode(data)
	if err != nil {
		return err
	}

	reg, err := s.pub.load(ctx)
	if err != nil {
		return err
	}

	imported.Version = reg.Version + 1
	if err := s.pub.publish(ctx, imported); err != nil {
		return err
	}

	s.logger.Info("snapshot imported",
		zap.Int("version", imported.Version),
		zap.Int("orders", len(imported.WorkOrders)),
		zap.Int("parts", len(imported.Parts)))

	return nil
}

// ResetToSeed replaces the registry with the seed fixture.
func (s *SnapshotServiceImpl) ResetToSeed(ctx context.Context) error {
	fresh := s.seed(s.now())

	// Keep the version sequence monotonic across resets so the archive
	// stays ordered. A missing current registry starts over at version 1.
	if reg, err := s.pub.load(ctx); err == nil {
		fresh.Version = reg.Version + 1
	}

	if err := s.pub.publish(ctx, fresh); err != nil {
		return err
	}

	s.logger.Info("registry reset to seed", zap.Int("version", fresh.Version))
	return nil
}

// History lists retained snapshot versions, newest first.
func (s *SnapshotServiceImpl) History(ctx context.Context, limit int) ([]*primary.SnapshotVersion, error) {
	if s.pub.archive == nil {
		return nil, fmt.Errorf("snapshot history is not configured")
	}

	entries, err := s.pub.archive.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	versions := make([]*primary.SnapshotVersion, len(entries))
	for i, e := range entries {
		versions[i] = &primary.SnapshotVersion{
			Version:   e.Version,
			CreatedAt: e.CreatedAt,
			SizeBytes: len(e.Payload),
		}
	}
	return versions, nil
}

// ShowVersion returns the retained document for a version.
func (s *SnapshotServiceImpl) ShowVersion(ctx context.Context, version int) ([]byte, error) {
	if s.pub.archive == nil {
		return nil, fmt.Errorf("snapshot history is not configured")
	}

	entry, err := s.pub.archive.Get(ctx, version)
	if err != nil {
		return nil, err
	}
	return entry.Payload, nil
}

// Ensure SnapshotServiceImpl implements the interface
var _ primary.SnapshotService = (*SnapshotServiceImpl)(nil)

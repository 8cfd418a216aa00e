package app

import (
	"context"
	"time"

	"github.com/example/dispatchiq/internal/adapters/memory"
	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/registry"
)

var testTime = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testTime }

func seededStore() *memory.RegistryStore {
	return memory.NewRegistryStore(registry.Seed(testTime))
}

// recordingArchive captures appended snapshots for assertions.
type recordingArchive struct {
	entries []*secondary.ArchiveEntry
}

func (a *recordingArchive) Append(ctx context.Context, version int, payload []byte) error {
	a.entries = append(a.entries, &secondary.ArchiveEntry{
		Version:   version,
		Payload:   payload,
		CreatedAt: testTime.Format(time.RFC3339),
	})
	return nil
}

func (a *recordingArchive) Get(ctx context.Context, version int) (*secondary.ArchiveEntry, error) {
	for _, e := range a.entries {
		if e.Version == version {
			return e, nil
		}
	}
	return nil, errNotArchived
}

func (a *recordingArchive) Latest(ctx context.Context) (*secondary.ArchiveEntry, error) {
	if len(a.entries) == 0 {
		return nil, nil
	}
	return a.entries[len(a.entries)-1], nil
}

func (a *recordingArchive) List(ctx context.Context, limit int) ([]*secondary.ArchiveEntry, error) {
	if limit <= 0 || limit > len(a.entries) {
		limit = len(a.entries)
	}
	out := make([]*secondary.ArchiveEntry, 0, limit)
	for i := len(a.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, a.entries[i])
	}
	return out, nil
}

var errNotArchived = &notArchivedError{}

type notArchivedError struct{}

func (e *notArchivedError) Error() string { return "snapshot version not found" }

var _ secondary.SnapshotArchive = (*recordingArchive)(nil)

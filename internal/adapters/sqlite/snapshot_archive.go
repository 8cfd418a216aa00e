// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dispatchiq/internal/ports/secondary"
)

// SnapshotArchive implements secondary.SnapshotArchive with SQLite.
type SnapshotArchive struct {
	db *sql.DB
}

// NewSnapshotArchive creates a new SQLite snapshot archive.
func NewSnapshotArchive(db *sql.DB) *SnapshotArchive {
	return &SnapshotArchive{db: db}
}

// Append stores a snapshot document under its version. Re-publishing the
// same version (import after reset) replaces the retained document.
func (a *SnapshotArchive) Append(ctx context.Context, version int, payload []byte) error {
	_, err := a.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO snapshots (version, payload, created_at) VALUES (?, ?, ?)",
		version, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to append snapshot %d: %w", version, err)
	}
	return nil
}

// Get retrieves a retained snapshot by version.
func (a *SnapshotArchive) Get(ctx context.Context, version int) (*secondary.ArchiveEntry, error) {
	row := a.db.QueryRowContext(ctx,
		"SELECT version, payload, created_at FROM snapshots WHERE version = ?",
		version,
	)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot version %d not found", version)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %d: %w", version, err)
	}

	return entry, nil
}

// Latest retrieves the highest retained version, or nil when the archive is
// empty.
func (a *SnapshotArchive) Latest(ctx context.Context) (*secondary.ArchiveEntry, error) {
	row := a.db.QueryRowContext(ctx,
		"SELECT version, payload, created_at FROM snapshots ORDER BY version DESC LIMIT 1",
	)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	return entry, nil
}

// List retrieves up to limit retained versions, newest first.
func (a *SnapshotArchive) List(ctx context.Context, limit int) ([]*secondary.ArchiveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := a.db.QueryContext(ctx,
		"SELECT version, payload, created_at FROM snapshots ORDER BY version DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.ArchiveEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ArchiveEntry, error) {
	var (
		entry   secondary.ArchiveEntry
		payload string
	)
	if err := scanner.Scan(&entry.Version, &payload, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.Payload = []byte(payload)
	return &entry, nil
}

// Ensure SnapshotArchive implements the interface
var _ secondary.SnapshotArchive = (*SnapshotArchive)(nil)

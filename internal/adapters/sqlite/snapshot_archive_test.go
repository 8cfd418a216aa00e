// Package sqlite_test contains integration tests for SQLite adapters.
// Tests load the authoritative schema via db.GetSchemaSQL so test and
// production schemas cannot drift.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/example/dispatchiq/internal/adapters/sqlite"
	"github.com/example/dispatchiq/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	_, err = testDB.Exec(db.GetSchemaSQL())
	require.NoError(t, err)

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func TestSnapshotArchiveAppendAndGet(t *testing.T) {
	ctx := context.Background()
	archive := sqlite.NewSnapshotArchive(setupTestDB(t))

	require.NoError(t, archive.Append(ctx, 1, []byte(`{"version":1}`)))
	require.NoError(t, archive.Append(ctx, 2, []byte(`{"version":2}`)))

	entry, err := archive.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, entry.Version)
	require.JSONEq(t, `{"version":2}`, string(entry.Payload))
	require.NotEmpty(t, entry.CreatedAt)
}

func TestSnapshotArchiveGetMissing(t *testing.T) {
	ctx := context.Background()
	archive := sqlite.NewSnapshotArchive(setupTestDB(t))

	_, err := archive.Get(ctx, 42)
	require.ErrorContains(t, err, "not found")
}

func TestSnapshotArchiveAppendReplacesVersion(t *testing.T) {
	ctx := context.Background()
	archive := sqlite.NewSnapshotArchive(setupTestDB(t))

	require.NoError(t, archive.Append(ctx, 1, []byte(`{"a":1}`)))
	require.NoError(t, archive.Append(ctx, 1, []byte(`{"a":2}`)))

	entry, err := archive.Get(ctx, 1)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":2}`, string(entry.Payload))
}

func TestSnapshotArchiveLatest(t *testing.T) {
	ctx := context.Background()
	archive := sqlite.NewSnapshotArchive(setupTestDB(t))

	// Empty archive yields nil, not an error.
	entry, err := archive.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, entry)

	require.NoError(t, archive.Append(ctx, 3, []byte(`{"v":3}`)))
	require.NoError(t, archive.Append(ctx, 7, []byte(`{"v":7}`)))

	entry, err = archive.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, entry.Version)
}

func TestSnapshotArchiveList(t *testing.T) {
	ctx := context.Background()
	archive := sqlite.NewSnapshotArchive(setupTestDB(t))

	for v := 1; v <= 5; v++ {
		require.NoError(t, archive.Append(ctx, v, []byte(`{}`)))
	}

	entries, err := archive.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, 5, entries[0].Version)
	require.Equal(t, 3, entries[2].Version)
}

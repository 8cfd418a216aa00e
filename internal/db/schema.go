package db

// SchemaSQL is the complete schema for the snapshot archive. This is the
// single source of truth: tests load it via GetSchemaSQL so test and
// production schemas cannot drift.
const SchemaSQL = `
-- Snapshot archive (append-only registry version history)
CREATE TABLE IF NOT EXISTS snapshots (
	version INTEGER PRIMARY KEY,
	payload TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}

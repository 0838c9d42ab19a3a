package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is the single monotonically increasing schema version.
// Version 1 had trips, the three per-trip list partitions, and gear;
// version 2 added the group_assignments log and saved templates.
const schemaVersion = 2

// schema contains the SQL statements to set up all partitions. Every
// statement is idempotent, which is what makes the upgrade routine safe to
// run twice: upgrading an already-upgraded store is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS trips (
    id TEXT PRIMARY KEY,
    start_date TEXT NOT NULL,
    data BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS packing_lists (
    trip_id TEXT PRIMARY KEY,
    items BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS meals (
    trip_id TEXT PRIMARY KEY,
    items BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS shopping_lists (
    trip_id TEXT PRIMARY KEY,
    items BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS gear (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    data BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS group_assignments (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    group_id TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS templates (
    name TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trips_start_date ON trips(start_date);
CREATE INDEX IF NOT EXISTS idx_gear_category ON gear(category);
CREATE INDEX IF NOT EXISTS idx_group_assignments_key ON group_assignments(trip_id, name, category);
`

// migrate runs the one-shot upgrade: create any missing partitions and bump
// the on-disk version. Opening a higher-versioned database is an error.
func migrate(db *sql.DB) error {
	var onDisk int
	if err := db.QueryRow("PRAGMA user_version").Scan(&onDisk); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if onDisk > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", onDisk, schemaVersion)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if onDisk < schemaVersion {
		// PRAGMA does not support placeholders.
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}
	return nil
}

// SchemaVersion reports the on-disk schema version.
func (s *SQLiteStore) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

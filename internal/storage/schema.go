// ABOUTME: SQLite schema definition and versioning.
// ABOUTME: Defines the submissions table with its list indexes, tracked through PRAGMA user_version.
package storage

import "fmt"

// schemaVersion is stored in PRAGMA user_version once the schema is applied.
const schemaVersion = 1

const submissionsSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	name TEXT,
	email TEXT,
	fitness_goal TEXT NOT NULL,
	dietary_preference TEXT NOT NULL,
	form_json TEXT NOT NULL,
	plan_json TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_submissions_goal_created ON submissions(fitness_goal, created_at DESC);
`

// initSchema creates the schema on a new database and refuses databases
// written by a newer version.
func (d *DB) initSchema() error {
	var version int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	if _, err := d.db.Exec(submissionsSchema); err != nil {
		return err
	}
	if version < schemaVersion {
		if _, err := d.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}
	return nil
}

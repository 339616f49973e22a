// ABOUTME: SQLite submission store: opening, pragmas and the XDG data directory.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// DBFileName and KVDirName are the backend locations inside the data directory.
const (
	DBFileName = "wellness.db"
	KVDirName  = "kv"
)

// sqlitePragmas run on every connection open.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

// DB is the SQLite-backed Repository.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens or creates the submissions database at path and brings its
// schema up to date.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	d := &DB{db: sqlDB, path: path}

	for _, pragma := range sqlitePragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// Submissions hold personal details.
	if err := os.Chmod(path, 0600); err != nil && !os.IsNotExist(err) {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	if err := d.initSchema(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.WithField("path", path).Debug("opened sqlite store")
	return d, nil
}

// Path returns the database file location.
func (d *DB) Path() string { return d.path }

// DataDir returns the default data directory following the XDG base directory layout.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wellness")
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// ABOUTME: Tests for opening SQLite stores and schema versioning.
// ABOUTME: Covers reopen persistence, file permissions and newer-schema refusal.
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDirectoryAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DBFileName)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}
	sub := newTestSubmission("Ravi", "maintenance", fixedTime)
	if err := db.CreateSubmission(sub); err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("database file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("database permissions = %o, want owner-only", perm)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()
	if _, err := db.GetSubmission(sub.ID.String()); err != nil {
		t.Errorf("submission lost across reopen: %v", err)
	}
}

func TestOpenSetsSchemaVersion(t *testing.T) {
	db := setupTestDB(t)

	var version int
	if err := db.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("read user_version: %v", err)
	}
	if version != schemaVersion {
		t.Errorf("user_version = %d, want %d", version, schemaVersion)
	}
}

func TestOpenRefusesNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := db.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("bump user_version: %v", err)
	}
	db.Close()

	if _, err := Open(path); err == nil {
		t.Error("expected error opening a database from a newer version")
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != filepath.Join("/tmp/xdg-data", "wellness") {
		t.Errorf("DataDir() = %q", got)
	}
}

package db

import (
	"path/filepath"
	"testing"
)

// setupTestDB creates a migrated database in a per-test temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	return database
}

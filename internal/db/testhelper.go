package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTestDB stands up a migrated events database in t.TempDir() and hands
// back its write and read pools. Both pools are closed on test cleanup.
//
// Tests that never touch the read path can ignore readDB and work through
// writeDB alone.
func OpenTestDB(t *testing.T) (writeDB, readDB *sql.DB) {
	t.Helper()

	file := filepath.Join(t.TempDir(), "events_test.sqlite")

	writeDB, readDB, err := OpenSQLitePair(file, 4)
	if err != nil {
		t.Fatalf("open test database %s: %v", file, err)
	}
	t.Cleanup(func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	})

	if err := RunMigrations(writeDB); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return writeDB, readDB
}

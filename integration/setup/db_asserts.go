//go:build integration

package setup

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// DBAsserts provides journal assertion helpers for integration tests
type DBAsserts struct {
	t  *testing.T
	db *sql.DB
}

// NewDBAsserts opens a second read connection on the journal file
func NewDBAsserts(t *testing.T, path string) *DBAsserts {
	t.Helper()
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("Failed to open journal for assertions: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &DBAsserts{t: t, db: db}
}

// AssertEditCount verifies how many edits were journaled for a unit
func (a *DBAsserts) AssertEditCount(unit string, expected int) {
	a.t.Helper()
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM edits WHERE unit = ?", unit).Scan(&count)
	if err != nil {
		a.t.Fatalf("Failed to count edits for %s: %v", unit, err)
	}
	if count != expected {
		a.t.Errorf("Expected %d edits for %s, found %d", expected, unit, count)
	}
}

// AssertSchemaVersion verifies the applied migration level
func (a *DBAsserts) AssertSchemaVersion(expected int) {
	a.t.Helper()
	var version int
	err := a.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	if err != nil {
		a.t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != expected {
		a.t.Errorf("Expected schema version %d, found %d", expected, version)
	}
}

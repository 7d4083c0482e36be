package database

import (
	"fmt"
	"strings"

	"ttsedit/internal/log"
)

// Migration represents a database migration
type Migration struct {
	ID          int
	Description string
	SQL         string
}

// migrations contains all database migrations in order
var migrations = []Migration{
	{
		ID:          1,
		Description: "Initial schema creation",
		SQL: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		ID:          2,
		Description: "Create edits journal",
		SQL: `
CREATE TABLE IF NOT EXISTS edits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file TEXT NOT NULL DEFAULT '',
	unit TEXT NOT NULL,
	profile TEXT NOT NULL,
	indices TEXT NOT NULL DEFAULT '',
	before_text TEXT NOT NULL,
	after_text TEXT NOT NULL,
	at_unix_nano INTEGER NOT NULL
);`,
	},
	{
		ID:          3,
		Description: "Index edits by unit",
		SQL: `
CREATE INDEX IF NOT EXISTS idx_edits_unit ON edits(unit, id);`,
	},
}

// runMigrations executes all pending migrations
func (j *Journal) runMigrations() error {
	if err := j.ensureSchemaVersionTable(); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := j.currentSchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	log.Debug("journal schema version", "version", currentVersion, "file", j.filename)

	for _, migration := range migrations {
		if migration.ID > currentVersion {
			log.Info("applying journal migration", "id", migration.ID, "description", migration.Description)

			if err := j.applyMigration(migration); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", migration.ID, err)
			}
		}
	}

	return nil
}

// ensureSchemaVersionTable creates the schema_version table if it doesn't exist
func (j *Journal) ensureSchemaVersionTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := j.db.Exec(query)
	return err
}

// currentSchemaVersion returns the current schema version
func (j *Journal) currentSchemaVersion() (int, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM schema_version;`

	var version int
	if err := j.db.QueryRow(query).Scan(&version); err != nil {
		return 0, err
	}

	return version, nil
}

// applyMigration applies a single migration
func (j *Journal) applyMigration(migration Migration) error {
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Execute migration SQL (handle multiple statements)
	statements := strings.Split(migration.SQL, ";")
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || strings.HasPrefix(stmt, "--") {
			continue
		}

		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration statement: %w", err)
		}
	}

	recordQuery := `INSERT INTO schema_version (version) VALUES (?);`
	if _, err := tx.Exec(recordQuery, migration.ID); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	return nil
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
	"ttsedit/internal/log"
)

// ErrNotOpen is returned by operations on a closed journal
var ErrNotOpen = errors.New("journal not open")

// Journal is the SQLite backed History
type Journal struct {
	db       *sql.DB
	filename string
}

var _ History = (*Journal)(nil)

// Open opens or creates the journal database and applies pending migrations
func Open(filename string) (*Journal, error) {
	log.Debug("opening journal", "file", filename)

	db, err := sql.Open("sqlite", filename+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	j := &Journal{db: db, filename: filename}
	if err := j.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return j, nil
}

// Filename returns the path the journal was opened with
func (j *Journal) Filename() string {
	return j.filename
}

// RecordEdit appends an edit. A zero At is stamped with the current time.
func (j *Journal) RecordEdit(edit Edit) error {
	if j.db == nil {
		return ErrNotOpen
	}
	if edit.At.IsZero() {
		edit.At = time.Now()
	}

	query, args, err := squirrel.Insert("edits").
		Columns("file", "unit", "profile", "indices", "before_text", "after_text", "at_unix_nano").
		Values(edit.File, edit.Unit, edit.Profile, encodeIndices(edit.Indices), edit.Before, edit.After, edit.At.UnixNano()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := j.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to record edit: %w", err)
	}

	log.Debug("recorded edit", "unit", edit.Unit, "profile", edit.Profile, "indices", edit.Indices)
	return nil
}

// Edits lists recorded edits newest first. An empty unit lists every unit;
// a limit of zero or less means no limit.
func (j *Journal) Edits(unit string, limit int) ([]Edit, error) {
	if j.db == nil {
		return nil, ErrNotOpen
	}

	builder := squirrel.Select("id", "file", "unit", "profile", "indices", "before_text", "after_text", "at_unix_nano").
		From("edits").
		OrderBy("id DESC")
	if unit != "" {
		builder = builder.Where(squirrel.Eq{"unit": unit})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query edits: %w", err)
	}
	defer rows.Close()

	var edits []Edit
	for rows.Next() {
		var (
			edit    Edit
			indices string
			atNano  int64
		)
		if err := rows.Scan(&edit.ID, &edit.File, &edit.Unit, &edit.Profile, &indices, &edit.Before, &edit.After, &atNano); err != nil {
			return nil, fmt.Errorf("failed to scan edit: %w", err)
		}
		if edit.Indices, err = decodeIndices(indices); err != nil {
			return nil, fmt.Errorf("edit %d has bad indices %q: %w", edit.ID, indices, err)
		}
		edit.At = time.Unix(0, atNano)
		edits = append(edits, edit)
	}

	return edits, rows.Err()
}

// Close closes the database. Further calls return ErrNotOpen.
func (j *Journal) Close() error {
	if j.db == nil {
		return ErrNotOpen
	}
	err := j.db.Close()
	j.db = nil
	return err
}

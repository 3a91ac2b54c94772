// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/IvanLB1405/records-api/internal/config"
	"github.com/IvanLB1405/records-api/internal/storage"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// schema is idempotent — safe to run on every startup.
//
//	accounts.balance and cars.speed are guarded values: the CHECK
//	constraints mirror the record package's "never below zero" rule
//	so a bad write fails loudly instead of corrupting state.
//	students.grades is a JSON array of numbers.
const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		owner   TEXT    NOT NULL,
		balance INTEGER NOT NULL DEFAULT 0 CHECK (balance >= 0)
	);
	CREATE TABLE IF NOT EXISTS cars (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		brand TEXT    NOT NULL,
		model TEXT    NOT NULL,
		year  INTEGER NOT NULL,
		speed INTEGER NOT NULL DEFAULT 0 CHECK (speed >= 0)
	);
	CREATE TABLE IF NOT EXISTS students (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		name    TEXT NOT NULL,
		surname TEXT NOT NULL,
		grades  TEXT NOT NULL DEFAULT '[]'
	);
`

// New opens the SQLite database at cfg.StoragePath, creates the tables
// if they do not already exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// SQLite allows one writer at a time. A single connection makes the
	// read-check-write transactions in Apply* queue up behind each other
	// instead of failing with "database is locked".
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// checkAffected turns "zero rows touched" into storage.ErrNotFound.
func checkAffected(result sql.Result, op string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return notFound(op, id)
	}
	return nil
}

func notFound(op string, id int64) error {
	return fmt.Errorf("%s: id %d: %w", op, id, storage.ErrNotFound)
}

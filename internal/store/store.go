// Package store is the SQLite-backed registry of volumes, snapshots,
// qgroups and properties that the leaf commands operate on.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/strata-tools/cli/internal/store/migrations"
)

// Store wraps a SQLite database connection for the registry.
type Store struct {
	db     *sql.DB
	path   string
	ownsDB bool
}

// Open creates a Store at the given database path, running migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, ownsDB: true}, nil
}

// NewWithDB creates a Store from an existing connection. The caller keeps
// ownership of the connection and is responsible for closing it; used by
// tests.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection when the store owns it.
func (s *Store) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions restricts the database and its WAL/SHM companions.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// migrations[i] upgrades a snapshot from user_version i to i+1.
var migrations = []string{
	// 1: category lookups for snapshot tooling.
	`CREATE INDEX IF NOT EXISTS idx_records_category ON records(category, subcategory)`,
}

// pragmas are set on every Open and read back; want is the value SQLite
// reports once the setting is in effect.
var pragmas = []struct {
	name, value, want string
}{
	{"journal_mode", "DELETE", "delete"},
	{"busy_timeout", "5000", "5000"},
}

// ErrNewerSchema is returned by Open for a snapshot whose user_version is
// above the latest migration this build knows.
var ErrNewerSchema = errors.New("snapshot schema is newer than supported")

// Store holds a catalog snapshot in SQLite.
type Store struct {
	db *sql.DB
}

// Open creates or opens the snapshot at path, applying the pragmas, the
// schema and any pending migrations. Opening an up-to-date snapshot
// changes nothing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection, so pragmas hold for every query.
	db.SetMaxOpenConns(1)

	if err := setup(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func setup(db *sql.DB) error {
	for _, p := range pragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			return fmt.Errorf("failed to set %s: %w", p.name, err)
		}
		got, err := pragmaValue(db, p.name)
		if err != nil {
			return err
		}
		if got != p.want {
			return fmt.Errorf("%s = %q, expected %q", p.name, got, p.want)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return migrate(db)
}

// migrate applies the migrations above the stored user_version.
func migrate(db *sql.DB) error {
	version, err := userVersion(db)
	if err != nil {
		return err
	}
	if version > len(migrations) {
		return fmt.Errorf("%w: version %d, latest %d", ErrNewerSchema, version, len(migrations))
	}
	for v := version; v < len(migrations); v++ {
		if _, err := db.Exec(migrations[v]); err != nil {
			return fmt.Errorf("migrate to v%d: %w", v+1, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) schemaVersion() (int, error) {
	return userVersion(s.db)
}

func userVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("get user_version: %w", err)
	}
	return version, nil
}

func pragmaValue(db *sql.DB, name string) (string, error) {
	var value string
	if err := db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return "", fmt.Errorf("failed to query %s: %w", name, err)
	}
	return value, nil
}

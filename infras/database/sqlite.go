package database

//nolint:revive
import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// OpenSQLite opens (or creates) the database file at path and applies the embedded schema.
// SQLite allows a single writer, so the pool is limited to one connection.
func OpenSQLite(path string) (*Connection, error) {
	db, err := sqlx.Connect(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()

			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Str("path", path).Msg("Connected to sqlite database")

	return &Connection{Read: db, Write: db}, nil
}

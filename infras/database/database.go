package database

import (
	"errors"
	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

var ErrUnavailable = errors.New("database unavailable")

// Connection holds the read and write handles used by the repositories.
// With SQLite both handles point to the same database.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	var (
		conn *Connection
		err  error
	)

	switch cfg.DB.Driver {
	case DriverSQLite, "sqlite":
		conn, err = OpenSQLite(cfg.DB.SQLite.Path)
	default:
		conn, err = newPostgres(cfg)
	}

	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("Failed to open database")
	}

	return conn
}

func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if c.Write != nil {
		return c.Write.Close() //nolint:wrapcheck
	}

	return nil
}

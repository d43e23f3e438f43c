package database

//nolint:revive
import (
	"fmt"
	"frontdesk/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

func newPostgres(cfg *config.Config) (*Connection, error) {
	write := createPostgresConnection("write", cfg.DB.Postgres.Write.Username, cfg.DB.Postgres.Write.Password,
		cfg.DB.Postgres.Write.Host, cfg.DB.Postgres.Write.Port, getDBName(cfg, cfg.DB.Postgres.Write.Name),
		cfg.DB.Postgres.Write.SSLMode, cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	if write == nil {
		return nil, fmt.Errorf("%w: postgres write connection", ErrUnavailable)
	}

	read := createPostgresConnection("read", cfg.DB.Postgres.Read.Username, cfg.DB.Postgres.Read.Password,
		cfg.DB.Postgres.Read.Host, cfg.DB.Postgres.Read.Port, getDBName(cfg, cfg.DB.Postgres.Read.Name),
		cfg.DB.Postgres.Read.SSLMode, cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	if read == nil {
		log.Warn().Msg("Read replica unavailable, routing reads to the write connection")

		read = write
	}

	return &Connection{Read: read, Write: write}, nil
}

func getDBName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func createPostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

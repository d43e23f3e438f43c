package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/database"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	migrationsSource       = "file://migrations/postgres"
	defaultMigrationsTable = "schema_migrations"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	table := config.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationsTable
	}

	sslMode := write.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("x-migrations-table", table)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + getDBName(config, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action to the postgres schema. SQLite databases carry their
// schema with them and are left alone.
func Runner(config *config.Config, action string) error {
	if config.DB.Driver == database.DriverSQLite || config.DB.Driver == "sqlite" {
		log.Info().Str("action", action).Msg("sqlite schema is applied on open, nothing to migrate")

		return nil
	}

	var run func(*migrate.Migrate) error

	switch action {
	case ActionUp:
		run = func(mig *migrate.Migrate) error { return mig.Up() }
	case ActionDown:
		run = func(mig *migrate.Migrate) error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func(mig *migrate.Migrate) error { return mig.Steps(1) }
	case ActionDrop:
		run = func(mig *migrate.Migrate) error { return mig.Down() }
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}

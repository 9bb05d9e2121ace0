package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"frontdesk/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

func migrationDSN(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	name := write.Name
	if cfg.DB.Postgres.Prefix != "" {
		name = cfg.DB.Postgres.Prefix + name
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		name,
		write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)
}

func runMigration(cfg *config.Config, apply func(mig *migrate.Migrate) error, doneMsg string) error {
	mig, err := migrate.New(migrationSource, migrationDSN(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error applying migration: %w", err)
	}

	log.Info().Msg(doneMsg)

	return nil
}

func Up(cfg *config.Config) error {
	return runMigration(cfg, func(mig *migrate.Migrate) error {
		return mig.Up()
	}, "Database migrations completed successfully")
}

func StepUp(cfg *config.Config) error {
	return runMigration(cfg, func(mig *migrate.Migrate) error {
		return mig.Steps(1)
	}, "Database migration step applied successfully")
}

func Down(cfg *config.Config) error {
	return runMigration(cfg, func(mig *migrate.Migrate) error {
		return mig.Steps(-1)
	}, "Database migration rolled back successfully")
}

func Drop(cfg *config.Config) error {
	return runMigration(cfg, func(mig *migrate.Migrate) error {
		return mig.Down()
	}, "Database migrations rolled back successfully")
}

package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"supatools/pkg/config"
)

// MigrateConfig applies every pending up migration under migrationsPath
// (a golang-migrate source URL such as file://migrations).
func MigrateConfig(migrationsPath string, cfg config.Config) error {
	connString := migrationConnString(cfg)
	if connString == "" {
		return ErrNoDatabaseURL
	}

	m, err := migrate.New(migrationsPath, connString)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	return nil
}

// MigrationVersion reports the schema version recorded by golang-migrate.
// A database that was never migrated returns version 0.
func MigrationVersion(migrationsPath string, cfg config.Config) (uint, bool, error) {
	connString := migrationConnString(cfg)
	if connString == "" {
		return 0, false, ErrNoDatabaseURL
	}

	m, err := migrate.New(migrationsPath, connString)
	if err != nil {
		return 0, false, err
	}
	defer func() { _, _ = m.Close() }()

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

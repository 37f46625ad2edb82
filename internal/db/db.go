package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate brings the database schema up to date. An already current
// schema is not an error.
func Migrate(migrationsPath string, connString string) error {
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		return fmt.Errorf("could not initialize migrations: %w", err)
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}

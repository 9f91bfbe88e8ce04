package postgres

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies every pending migration. It reports whether anything changed.
func MigrateUp(db *gorm.DB) (bool, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return false, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return false, errors.Wrap(err, "open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return false, errors.Wrap(err, "init migrate driver")
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return false, errors.Wrap(err, "init migrator")
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}

		return false, errors.Wrap(err, "migrate up")
	}

	return true, nil
}

package migrator

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	appmigrations "github.com/m04kA/SMC-BeautyBooking/migrations"
)

var ErrMigrate = errors.New("migrator: failed to apply migrations")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все встроенные миграции к базе данных
func Up(db *sql.DB, dbName string, log Logger) error {
	dbDriver, err := postgres.WithInstance(db, &postgres.Config{DatabaseName: dbName})
	if err != nil {
		return fmt.Errorf("%w: db driver: %v", ErrMigrate, err)
	}

	srcDriver, err := iofs.New(appmigrations.FS, ".")
	if err != nil {
		return fmt.Errorf("%w: source driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("%w: create migrator: %v", ErrMigrate, err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: up: %v", ErrMigrate, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: read version: %v", ErrMigrate, err)
	}
	log.Info("Migrations: applied, version=%d dirty=%t", version, dirty)
	return nil
}

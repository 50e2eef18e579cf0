package migrator

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Действия migrate
const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Migrator применяет встроенные SQL-миграции к PostgreSQL
type Migrator struct {
	files  fs.FS
	dbURL  string
	logger Logger
}

// New создает мигратор. files содержит пары NNNNNN_name.up.sql / .down.sql.
func New(files fs.FS, dbURL string, logger Logger) *Migrator {
	return &Migrator{files: files, dbURL: dbURL, logger: logger}
}

// Source открывает встроенный источник миграций
func (m *Migrator) Source() (source.Driver, error) {
	src, err := iofs.New(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	return src, nil
}

// Run выполняет действие: up, down (один шаг назад), step-up, drop (откат всех)
func (m *Migrator) Run(action string) error {
	switch action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	src, err := m.Source()
	if err != nil {
		return err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", src, m.dbURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			m.logger.Warn("Migrate: close: source=%v db=%v", srcErr, dbErr)
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Migrate: %s - no change", action)
		return nil
	}
	if err != nil {
		m.logger.Error("Migrate: %s failed: %v", action, err)
		return fmt.Errorf("%w: %s: %v", ErrMigrate, action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		m.logger.Warn("Migrate: failed to read version: %v", verr)
	}
	m.logger.Info("Migrate: %s completed (version=%d dirty=%t)", action, version, dirty)
	return nil
}

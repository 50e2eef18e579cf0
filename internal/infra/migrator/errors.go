package migrator

import "errors"

var (
	ErrUnknownAction = errors.New("migrator: unknown action")
	ErrSource        = errors.New("migrator: failed to open migrations")
	ErrConnect       = errors.New("migrator: failed to connect")
	ErrMigrate       = errors.New("migrator: migration failed")
)

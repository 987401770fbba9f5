package application

import (
	"errors"

	"gorm.io/gorm"
)

// Expected failure kinds. Handlers map these onto HTTP statuses;
// nothing below is raised for empty list results.
var (
	ErrNotFound               = errors.New("record not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrValidation             = errors.New("validation failed")
	ErrConflict               = errors.New("conflicting state")
)

// translateNotFound maps the GORM sentinel onto the application error
// so callers never depend on the storage layer.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

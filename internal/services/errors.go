package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Match them with errors.Is; the transport maps each to a status code.
var (
	ErrValidation    = errors.New("validation error")
	ErrUnprocessable = errors.New("unprocessable input")
	ErrUnauthorized  = errors.New("wrong password")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
)

// Error carries a user-facing message together with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// storeError converts gorm sentinel errors into domain errors; anything else
// is returned unchanged and surfaces as an internal error.
func storeError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return newError(ErrNotFound, "%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return newError(ErrConflict, "%s already exists", what)
	default:
		return err
	}
}

func isKind(err, kind error) bool {
	return err != nil && errors.Is(err, kind)
}

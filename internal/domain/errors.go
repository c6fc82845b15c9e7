package domain

import "errors"

// Sentinel errors shared across services and repositories. Repositories
// translate driver-level "no rows" into ErrNotFound so controllers can map
// errors to status codes without knowing about database/sql.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
)

package repository

import "errors"

// Sentinel errors shared by every repository implementation. Callers match
// them with errors.Is; the mongo implementations translate driver errors into
// these values.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already taken")
)

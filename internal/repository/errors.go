package repository

import "errors"

// Store-level errors. The repositories expose the store's conditional
// primitives (insert-if-absent, update-if-exists, delete-if-exists); these
// are how their condition failures surface.
var (
	ErrNotFound      = errors.New("item not found")
	ErrAlreadyExists = errors.New("item already exists")
	ErrBadPageToken  = errors.New("malformed page token")
)

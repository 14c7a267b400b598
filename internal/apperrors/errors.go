package apperrors

import "errors"

// ErrNotFound indicates that a requested entity could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates that an entity with the same id already exists.
var ErrDuplicate = errors.New("resource already exists")

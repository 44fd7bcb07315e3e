package repository

import "errors"

// Common repository errors, so services can branch without knowing the backend.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

package domain

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("note not found")
	ErrNoSession  = errors.New("no active session")
)

package services

import (
	"errors"
)

// Error kinds the controllers map onto HTTP status codes. Services wrap these
// with context, so callers match with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)

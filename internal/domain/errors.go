package domain

import "errors"

// Sentinel errors for the service and repository layers. Callers wrap
// them with %w and match with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("booking slot is already taken")
	ErrInactiveSpace     = errors.New("space is not active")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageTooLarge     = errors.New("image exceeds size limit")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("operation not permitted")
)

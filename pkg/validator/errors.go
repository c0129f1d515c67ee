package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownType is returned when a tag does not name a known field type.
	ErrUnknownType = errors.New("unknown validation type")
)

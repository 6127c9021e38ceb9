// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the root of every entity validation error; the
	// field-specific sentinels (ErrEmptyTitle, ErrInvalidEmail, ...) all
	// wrap it, so errors.Is(err, ErrValidation) catches any of them.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a date string does not match the
	// expected YYYY-MM-DD wire format.
	ErrInvalidDate = errors.New("invalid date format")
)

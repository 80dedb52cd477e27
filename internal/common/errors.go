// Package common defines shared constants and sentinel errors used across
// worklog layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (malformed field values, bad menu choices).
	ErrValidation = errors.New("validation error")

	// Unknown storage driver in configuration.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

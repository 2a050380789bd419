// Package common defines shared constants and sentinel errors used across
// the profiles components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrorEmailExists = errors.New("email already exists")

	// Validation errors, returned before any persistence attempt.
	ErrorEmailRequired    = errors.New("email required")
	ErrorPasswordRequired = errors.New("password required")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)

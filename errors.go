package convo

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message, conversation or theme failed validation.
	ErrValidation = errors.New("validation error")

	// ErrResourceNotFound indicates a resource ID has no drawable.
	ErrResourceNotFound = errors.New("resource not found")
)

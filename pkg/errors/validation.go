// Package errors holds error types shared by the configuration layer.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports a configuration field holding an unusable value.
// Field uses the dotted key path as it appears in the config file.
type ValidationError struct {
	Value any    `json:"value"` // Value read for the field.
	Field string `json:"field"` // Dotted key path, e.g. "logging.level".
	Err   error  `json:"error"` // Why the value was refused.
}

// NewValidationError wraps err as the reason field holds an unusable value.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err, or any error it wraps, is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError returns the first ValidationError in err's chain, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

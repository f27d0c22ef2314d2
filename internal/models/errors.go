package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a user, profile or document does not exist.
	// Callers treat it as empty state.
	ErrNotFound = errors.New("not found")

	// ErrStorageCorrupt marks a stored blob that is not valid structured data.
	// Stores recover from it by starting over with an empty value.
	ErrStorageCorrupt = errors.New("stored data is corrupt")

	// ErrSchemaVersion is returned for records written by a newer schema.
	ErrSchemaVersion = errors.New("unsupported schema version")
)

// ValidationError reports a missing or malformed input that blocks an operation.
type ValidationError struct {
	// Item is the zero-based line item index, or -1 when the error is not item specific.
	Item int
	// Field is the offending input name (e.g. "quantity", "unit_price", "id").
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError that is not tied to a line item.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Item: -1, Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Item >= 0 {
		return fmt.Sprintf("item %d: %s: %s", e.Item+1, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

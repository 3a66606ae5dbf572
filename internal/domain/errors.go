package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedInput indicates that an input value could not be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrResolutionFailed indicates that a declared relationship could not be resolved.
	ErrResolutionFailed = errors.New("resolution failed")
)

// ValidationError reports the first violated constraint on an input.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError provides details about a missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MalformedInputError reports an unparsable input value, such as a
// date of birth that is not ISO-8601.
type MalformedInputError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// ResolutionReason classifies why a relationship failed to resolve.
type ResolutionReason string

// Resolution failure reasons.
const (
	// ReasonMissingReference means a mandatory reference id was absent on the owner.
	ReasonMissingReference ResolutionReason = "missing reference"

	// ReasonDanglingReference means the reference id points at an entity
	// that no longer exists in storage.
	ReasonDanglingReference ResolutionReason = "referenced entity not found"

	// ReasonIncompleteReference means the referenced entity exists but lacks
	// attributes required by the resolved shape.
	ReasonIncompleteReference ResolutionReason = "referenced entity incomplete"
)

// ResolutionError reports a failed relationship resolution. An empty RefID
// distinguishes a missing reference from a dangling one.
type ResolutionError struct {
	Entity string
	Field  string
	RefID  string
	Reason ResolutionReason
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.RefID == "" {
		return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s.%s (%s): %s", e.Entity, e.Field, e.RefID, e.Reason)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ResolutionError) Unwrap() error {
	return ErrResolutionFailed
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		ID:     id,
	}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(field, message string) *MalformedInputError {
	return &MalformedInputError{
		Field:   field,
		Message: message,
	}
}

// NewResolutionError creates a new ResolutionError.
func NewResolutionError(entity, field, refID string, reason ResolutionReason) *ResolutionError {
	return &ResolutionError{
		Entity: entity,
		Field:  field,
		RefID:  refID,
		Reason: reason,
	}
}

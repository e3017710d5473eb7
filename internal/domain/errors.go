package domain

import "errors"

var (
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrEmptyUpdate means a payload named no field the resource accepts.
	ErrEmptyUpdate = errors.New("no valid fields to update")
	// ErrBodyRequired means the request carried no JSON object.
	ErrBodyRequired = errors.New("request body is required")
)

// NotFoundError reports a missing row for a path-identified resource.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// Is makes errors.Is(err, ErrNotFound) hold for any entity.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound returns a NotFoundError for entity.
func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

// ValidationError names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Message }

// Missing reports an absent required field.
func Missing(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// Invalid reports a field whose value could not be used.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

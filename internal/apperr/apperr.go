// Package apperr defines the typed failures shared by the service and
// handler layers. Services raise them at the point of detection; the
// handler layer alone maps them to HTTP status codes.
package apperr

import "errors"

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NotFound builds a NotFoundError for the named entity.
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ConflictError reports a uniqueness collision on the named entity or key.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return e.Entity + " conflict"
}

// Conflict builds a ConflictError for the named entity.
func Conflict(entity string) error {
	return &ConflictError{Entity: entity}
}

// InvalidStateError reports a validation or cross-field rule failure.
type InvalidStateError struct {
	Detail string
}

func (e *InvalidStateError) Error() string {
	return e.Detail
}

// InvalidState builds an InvalidStateError with the given detail message.
func InvalidState(detail string) error {
	return &InvalidStateError{Detail: detail}
}

// ErrUnauthenticated is returned when the caller presented no usable
// credential. Distinct from ErrUnauthorized, which means the caller is
// known but lacks the required role.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrUnauthorized is returned when the caller's role is not in the
// allowed set for an operation.
var ErrUnauthorized = errors.New("insufficient permissions")

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}

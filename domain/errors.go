package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Activity errors
var (
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrActivityNotFound    = errors.New("activity not found")
)

// Upload errors
var (
	ErrInvalidFileType    = errors.New("file must be jpeg/jpg/png")
	ErrFileTooLarge       = errors.New("file size exceeds 100KiB")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrValidation is the parent of every ValidationError
var ErrValidation = errors.New("validation failed")

// ValidationError reports a rejected input field. It never carries the
// submitted value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ErrorKind classifies errors for transport mapping
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindUpstreamUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "internal"
	}
}

// KindOf maps err onto the error taxonomy. Unclassified errors are internal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidActivityType),
		errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrFileTooLarge):
		return KindValidation
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired):
		return KindUnauthenticated
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrActivityNotFound):
		return KindNotFound
	case errors.Is(err, ErrUserAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrStorageUnavailable):
		return KindUpstreamUnavailable
	default:
		return KindInternal
	}
}

package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAccessDenied indicates that the resource exists but belongs to someone else.
// Kept distinct from ErrNotFound so callers can tell the two apart.
var ErrAccessDenied = errors.New("access denied")

// ErrConfiguration indicates a programming or wiring mistake, never bad user input.
var ErrConfiguration = errors.New("configuration error")

// FieldError describes a single failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level cause found while validating input
// for one operation.
type ValidationError struct {
	Operation string       `json:"operation"`
	Causes    []FieldError `json:"causes"`
}

// NewValidationError builds a ValidationError for the named operation.
func NewValidationError(operation string, causes ...FieldError) *ValidationError {
	return &ValidationError{Operation: operation, Causes: causes}
}

func (e *ValidationError) Error() string {
	if len(e.Causes) == 0 {
		return e.Operation
	}
	parts := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		parts[i] = c.Field + ": " + c.Message
	}
	return fmt.Sprintf("%s: %s", e.Operation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConfigurationError is raised by code paths that can only fail because of a bug
// in how the caller wired things up.
type ConfigurationError struct {
	Message string
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string { return "configuration error: " + e.Message }

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// AppError wraps an infrastructure failure with the status code the transport
// layer should answer with.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error { return e.Err }

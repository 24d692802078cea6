// Package errors provides the typed failures raised by optics.
// Every failure is an *OpticError carrying an ErrorCode; errors.Is matches
// on the code so callers can compare against the sentinel values below.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents optic failure categories.
type ErrorCode string

const (
	// Lens resolution
	ErrCodeMissingKey   ErrorCode = "MISSING_KEY"
	ErrCodeMissingIndex ErrorCode = "MISSING_INDEX"
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// Prism and traversal
	ErrCodeNoFocus ErrorCode = "NO_FOCUS"

	// Removal
	ErrCodeInvalidRemoveOnLens ErrorCode = "INVALID_REMOVE_ON_LENS"
	ErrCodeRemoveRoot          ErrorCode = "REMOVE_ROOT"

	// Construction
	ErrCodeInvalidPath ErrorCode = "INVALID_PATH"
)

// Sentinels for errors.Is comparisons.
var (
	ErrMissingKey          = &OpticError{Code: ErrCodeMissingKey}
	ErrMissingIndex        = &OpticError{Code: ErrCodeMissingIndex}
	ErrTypeMismatch        = &OpticError{Code: ErrCodeTypeMismatch}
	ErrNoFocus             = &OpticError{Code: ErrCodeNoFocus}
	ErrInvalidRemoveOnLens = &OpticError{Code: ErrCodeInvalidRemoveOnLens}
	ErrRemoveRoot          = &OpticError{Code: ErrCodeRemoveRoot}
	ErrInvalidPath         = &OpticError{Code: ErrCodeInvalidPath}
)

// OpticError is the error type returned by every optic operation.
type OpticError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Step    string         `json:"step,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *OpticError) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.Code))
	b.WriteString("] ")
	b.WriteString(e.Message)
	if e.Step != "" {
		b.WriteString(" (step ")
		b.WriteString(e.Step)
		if at, ok := e.Details["at"].(string); ok && at != "" {
			b.WriteString(" at ")
			b.WriteString(at)
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *OpticError) Unwrap() error {
	return e.cause
}

// Is matches another *OpticError with the same code.
func (e *OpticError) Is(target error) bool {
	if t, ok := target.(*OpticError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCause sets the underlying cause.
func (e *OpticError) WithCause(cause error) *OpticError {
	e.cause = cause
	return e
}

// WithStep records the rendered step that failed.
func (e *OpticError) WithStep(step string) *OpticError {
	e.Step = step
	return e
}

// WithDetail adds a detail to the error.
func (e *OpticError) WithDetail(key string, value any) *OpticError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Clone returns a copy of e with its own Details map, so the copy can be
// annotated without touching e.
func (e *OpticError) Clone() *OpticError {
	c := *e
	if e.Details != nil {
		c.Details = make(map[string]any, len(e.Details))
		for k, v := range e.Details {
			c.Details[k] = v
		}
	}
	return &c
}

// New creates an OpticError with the given code and message.
func New(code ErrorCode, message string) *OpticError {
	return &OpticError{Code: code, Message: message}
}

// Newf creates an OpticError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *OpticError {
	return New(code, fmt.Sprintf(format, args...))
}

// IsCode checks if the error has the specified error code.
func IsCode(err error, code ErrorCode) bool {
	if oe, ok := AsType[*OpticError](err); ok {
		return oe.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, or "" for foreign errors.
func GetCode(err error) ErrorCode {
	if oe, ok := AsType[*OpticError](err); ok {
		return oe.Code
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

package envelope

import (
	"errors"
	"fmt"
)

// Category classifies an operation failure. Every failure surfaced to a
// client carries exactly one category.
type Category string

const (
	// UnknownOperation means the requested operation name is not registered.
	UnknownOperation Category = "unknown-operation"
	// InvalidParameters means a required parameter is missing or ill-typed.
	InvalidParameters Category = "invalid-parameters"
	// DisallowedOperation means the request was rejected by policy
	// (currently only the read-only guard on ad-hoc queries).
	DisallowedOperation Category = "disallowed-operation"
	// NotInstalled means the toolkit executable cannot be located.
	NotInstalled Category = "not-installed"
	// NotConfigured means the toolkit is present but reports missing setup.
	NotConfigured Category = "not-configured"
	// InvalidInput means the toolkit rejected the supplied arguments.
	InvalidInput Category = "invalid-input"
	// ExecutionError means the toolkit raised during the actual action.
	ExecutionError Category = "execution-error"
)

// Error is a classified operation failure. It implements the error
// interface so toolkit and handler code can return it directly.
type Error struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Errorf builds a classified error with a formatted message.
func Errorf(cat Category, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// Result is the uniform response envelope for every invocation. A result
// is either a success payload or a classified error, never both.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// OK wraps a success payload.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps a classified failure.
func Fail(cat Category, message string) Result {
	return Result{Success: false, Error: &Error{Category: cat, Message: message}}
}

// FromError converts any error into a failure envelope. Classified errors
// keep their category; everything else becomes an execution error with the
// message preserved verbatim.
func FromError(err error) Result {
	var e *Error
	if errors.As(err, &e) {
		return Result{Success: false, Error: e}
	}
	return Fail(ExecutionError, err.Error())
}

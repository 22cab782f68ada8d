// Package errors defines the stable error code system for jsoncheck.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; CI scripts may match on them.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	EInvalidConfig Code = "E_INVALID_CONFIG" // .jsoncheck.yaml unreadable or invalid
	EReadFailed    Code = "E_READ_FAILED"    // candidate file or stdin could not be read as text
	EUnrecoverable Code = "E_UNRECOVERABLE"  // json parser failed for a reason other than the contents
	EIssuesFound   Code = "E_ISSUES_FOUND"   // at least one file has a syntax or format issue
)

// ExitIssuesFound is the process exit code when any file has an issue.
const ExitIssuesFound = 65

// CheckError is the standard error type for jsoncheck errors.
type CheckError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// New creates a new CheckError with the given code and message.
func New(code Code, msg string) error {
	return &CheckError{Code: code, Msg: msg}
}

// NewWithDetails creates a new CheckError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &CheckError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new CheckError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &CheckError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new CheckError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &CheckError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a CheckError.
func GetCode(err error) Code {
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// AsCheckError returns (*CheckError, true) if err is or wraps a CheckError.
func AsCheckError(err error) (*CheckError, bool) {
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, 65 for E_ISSUES_FOUND, 2 for E_USAGE, 1 for all
// other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case EIssuesFound:
		return ExitIssuesFound
	case EUsage:
		return 2
	}
	return 1
}

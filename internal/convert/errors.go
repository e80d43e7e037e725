// internal/convert/errors.go
package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against a conversion failure
var (
	ErrIO           = &Error{Code: ErrCodeIO}
	ErrParse        = &Error{Code: ErrCodeParse}
	ErrMissingField = &Error{Code: ErrCodeMissingField}
)

// ErrorCode represents a specific failure class of a conversion run
type ErrorCode string

const (
	ErrCodeIO           ErrorCode = "IO_ERROR"
	ErrCodeParse        ErrorCode = "PARSE_ERROR"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Error wraps a conversion failure with the file and record it concerns.
// Index is -1 when the failure is not tied to a single record.
type Error struct {
	Code       ErrorCode
	Message    string
	Path       string
	Index      int
	Field      string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (file %s", e.Path)
		if e.Index >= 0 {
			msg += fmt.Sprintf(", record %d", e.Index)
		}
		if e.Field != "" {
			msg += fmt.Sprintf(", field %q", e.Field)
		}
		msg += ")"
	}
	if e.Underlying != nil {
		msg += fmt.Sprintf(": %v", e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches another *Error by code, so the sentinels above work with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Index:      -1,
		Underlying: err,
	}
}

// withPath sets the file path unless one was recorded already.
func (e *Error) withPath(path string) *Error {
	if e.Path == "" {
		e.Path = path
	}
	return e
}

// Code reports the ErrorCode of err, or "" when err is not a conversion error.
func Code(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

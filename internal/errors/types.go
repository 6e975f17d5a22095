package errors

import (
	"fmt"
	"strings"
)

// ArgonError is implemented by every error the generator reports
type ArgonError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() []Detail
	Suggestions() []string
	Unwrap() error
}

// Detail is one key/value pair of error context
type Detail struct {
	Key   string
	Value interface{}
}

// BaseError provides a common implementation of the ArgonError interface
type BaseError struct {
	Code    ErrorCode
	Message string
	Loc     SourceLocation
	Cause   error
	Details []Detail // in the order they were added
	Hints   []string
}

func (e *BaseError) Error() string {
	message := e.Message
	if e.Cause != nil {
		message = fmt.Sprintf("%s: %v", message, e.Cause)
	}
	if e.Loc.IsEmpty() {
		return message
	}
	return fmt.Sprintf("%s: %s", e.Loc, message)
}

func (e *BaseError) ErrorCode() ErrorCode     { return e.Code }
func (e *BaseError) Location() SourceLocation { return e.Loc }
func (e *BaseError) Context() []Detail        { return e.Details }
func (e *BaseError) Suggestions() []string    { return e.Hints }
func (e *BaseError) Unwrap() error            { return e.Cause }

// Detail returns the context value stored under key
func (e *BaseError) Detail(key string) (interface{}, bool) {
	for _, d := range e.Details {
		if d.Key == key {
			return d.Value, true
		}
	}
	return nil, false
}

// WithLocation sets the source location
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// WithCause sets the underlying error
func (e *BaseError) WithCause(cause error) *BaseError {
	e.Cause = cause
	return e
}

// WithContext records key=value. Setting a key again replaces its value in
// place.
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	for i := range e.Details {
		if e.Details[i].Key == key {
			e.Details[i].Value = value
			return e
		}
	}
	e.Details = append(e.Details, Detail{Key: key, Value: value})
	return e
}

// WithSuggestion adds a hint; empty hints are ignored
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	if suggestion != "" {
		e.Hints = append(e.Hints, suggestion)
	}
	return e
}

// New creates a BaseError
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

// Newf creates a BaseError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a BaseError caused by another error
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return New(code, message).WithCause(cause)
}

// MultipleErrors collects the failures of independent packages so one bad
// package does not hide the rest
type MultipleErrors struct {
	Errors []error
}

// NewMultipleErrors creates an empty collection
func NewMultipleErrors() *MultipleErrors {
	return &MultipleErrors{}
}

func (e *MultipleErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "multiple errors (%d total):", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err)
	}
	return b.String()
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	return e.Errors
}

// Add adds a non-nil error to the collection
func (e *MultipleErrors) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// IsEmpty returns true if there are no errors
func (e *MultipleErrors) IsEmpty() bool {
	return len(e.Errors) == 0
}

// Count returns the number of errors
func (e *MultipleErrors) Count() int {
	return len(e.Errors)
}

// ErrorOrNil returns nil for an empty collection
func (e *MultipleErrors) ErrorOrNil() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

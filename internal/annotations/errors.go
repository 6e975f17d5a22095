package annotations

import (
	"fmt"
	"strings"
)

// AnnotationError defines the interface for annotation-related errors
type AnnotationError interface {
	error
	Location() SourceLocation
	Suggestion() string
	// Message returns the error text without the location prefix
	Message() string
}

// SyntaxError reports a comment that does not follow the annotation grammar
type SyntaxError struct {
	Msg  string
	Loc  SourceLocation
	Hint string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message())
}

func (e *SyntaxError) Message() string {
	return "syntax error: " + e.Msg
}

func (e *SyntaxError) Location() SourceLocation { return e.Loc }
func (e *SyntaxError) Suggestion() string       { return e.Hint }

// ValidationError reports a well-formed annotation that breaks its schema
type ValidationError struct {
	Type      AnnotationType
	Parameter string
	Msg       string
	Loc       SourceLocation
	Hint      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message())
}

func (e *ValidationError) Message() string {
	if e.Parameter == "" {
		return fmt.Sprintf("%s annotation: %s", e.Type, e.Msg)
	}
	return fmt.Sprintf("%s annotation: parameter '%s': %s", e.Type, e.Parameter, e.Msg)
}

func (e *ValidationError) Location() SourceLocation { return e.Loc }
func (e *ValidationError) Suggestion() string       { return e.Hint }

func newValidationError(schema AnnotationSchema, parameter, msg string, loc SourceLocation) *ValidationError {
	hint := ""
	if len(schema.Examples) > 0 {
		hint = "Example: " + strings.Join(schema.Examples, " or ")
	}
	return &ValidationError{
		Type:      schema.Type,
		Parameter: parameter,
		Msg:       msg,
		Loc:       loc,
		Hint:      hint,
	}
}

package errors

import "fmt"

// ValidationError represents a validation failure of a named item
type ValidationError struct {
	*BaseError
	Field string      // what was validated
	Value interface{} // the offending value
}

// NewValidationError creates a validation error for field with the offending value
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		BaseError: New(ValidationErrorCode, fmt.Sprintf("%s '%v': %s", field, value, message)),
		Field:     field,
		Value:     value,
	}
}

// WithLocation adds location information
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a suggestion
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// SyntaxError represents a parsing failure
type SyntaxError struct {
	*BaseError
	Token string // the text that failed to parse, if known
}

// NewSyntaxError creates a syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{BaseError: New(SyntaxErrorCode, message)}
}

// NewAnnotationSyntaxError creates a syntax error for an annotation comment
func NewAnnotationSyntaxError(kind, raw, message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, fmt.Sprintf("%s annotation: %s", kind, message)),
		Token:     raw,
	}
}

// WithLocation adds location information
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a suggestion
func (e *SyntaxError) WithSuggestion(suggestion string) *SyntaxError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// GenerationError represents a failure while producing output
type GenerationError struct {
	*BaseError
	TargetFile string // file being generated
	Stage      string // render, format or write
}

// NewGenerationError creates a generation error
func NewGenerationError(targetFile, stage, message string) *GenerationError {
	return &GenerationError{
		BaseError:  New(GenerationErrorCode, message),
		TargetFile: targetFile,
		Stage:      stage,
	}
}

package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/toyz/argon/internal/annotations"
)

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, cause error) *SyntaxError {
	return &SyntaxError{
		BaseError: Wrap(SyntaxErrorCode, fmt.Sprintf("failed to parse %s", item), cause),
	}
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(stage, targetFile string, cause error) *GenerationError {
	return &GenerationError{
		BaseError:  Wrap(GenerationErrorCode, fmt.Sprintf("failed to %s %s", stage, targetFile), cause),
		TargetFile: targetFile,
		Stage:      stage,
	}
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, fmt.Sprintf("failed to %s file '%s'", operation, path), cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, fmt.Sprintf("failed to %s configuration '%s'", operation, configType), cause).
		WithContext("config_type", configType)
}

// WrapAnnotationError converts an annotation parser error, keeping its
// location and suggestion
func WrapAnnotationError(err error) error {
	var annErr annotations.AnnotationError
	if !stderrors.As(err, &annErr) {
		return WrapParseError("annotation", err)
	}

	loc := annErr.Location()
	location := SourceLocation{File: loc.File, Line: loc.Line, Column: loc.Column}

	var validationErr *annotations.ValidationError
	if stderrors.As(err, &validationErr) {
		wrapped := &ValidationError{
			BaseError: New(ValidationErrorCode, annErr.Message()),
			Field:     validationErr.Parameter,
		}
		return wrapped.WithLocation(location).WithSuggestion(annErr.Suggestion())
	}

	return NewSyntaxError(annErr.Message()).WithLocation(location).WithSuggestion(annErr.Suggestion())
}

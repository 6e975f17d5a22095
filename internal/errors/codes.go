package errors

import "fmt"

// ErrorCode classifies an error for reporting
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	ValidationErrorCode
	GenerationErrorCode
	FileSystemErrorCode
	ConfigurationErrorCode
)

var codeNames = [...]string{
	UnknownErrorCode:       "UnknownError",
	SyntaxErrorCode:        "SyntaxError",
	ValidationErrorCode:    "ValidationError",
	GenerationErrorCode:    "GenerationError",
	FileSystemErrorCode:    "FileSystemError",
	ConfigurationErrorCode: "ConfigurationError",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[UnknownErrorCode]
	}
	return codeNames[c]
}

// SourceLocation points at a position in a Go source file
type SourceLocation struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int // 1-based, 0 when unknown
}

func (s SourceLocation) String() string {
	switch {
	case s.File == "":
		return "unknown location"
	case s.Line == 0:
		return s.File
	case s.Column == 0:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
}

// IsEmpty reports whether the location names no file
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

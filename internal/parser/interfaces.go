package parser

import "github.com/toyz/argon/internal/models"

// AnnotationParser extracts provider metadata from Go source
type AnnotationParser interface {
	// ParseDirectory parses every non-test Go file in dir. importPath is the
	// import path of the package, used to qualify locally declared types.
	ParseDirectory(dir, importPath string) (*models.PackageMetadata, error)

	// ParseSource parses a single in-memory file
	ParseSource(filename, source, importPath string) (*models.PackageMetadata, error)
}

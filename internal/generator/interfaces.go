package generator

import "github.com/toyz/argon/internal/models"

// CodeGenerator renders the argument table for a parsed package
type CodeGenerator interface {
	Generate(metadata *models.PackageMetadata) (*models.GeneratedFile, error)
}

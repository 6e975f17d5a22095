package cli

import (
	"github.com/toyz/argon/internal/utils"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	fileProcessor *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// CleanGeneratedFiles removes every generated argument file matched by the
// directory patterns and returns the removed paths
func (c *Cleaner) CleanGeneratedFiles(patterns []string) ([]string, error) {
	var removed []string
	for _, pattern := range patterns {
		dir, recursive := splitPattern(pattern)
		files, err := c.fileProcessor.CleanDirectories([]string{dir}, recursive)
		removed = append(removed, files...)
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}

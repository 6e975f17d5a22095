package cli

import (
	"sort"

	"github.com/toyz/argon/internal/utils"
)

// DirectoryScanner handles recursive directory scanning for Go files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanDirectories returns the absolute paths of the directories that contain
// Go source. Patterns ending in "/..." are scanned recursively.
func (s *DirectoryScanner) ScanDirectories(patterns []string) ([]string, error) {
	var recursive, single []string
	for _, pattern := range patterns {
		dir, deep := splitPattern(pattern)
		if deep {
			recursive = append(recursive, dir)
		} else {
			single = append(single, dir)
		}
	}

	found, err := s.fileProcessor.ScanDirectoriesWithGoFiles(recursive)
	if err != nil {
		return nil, err
	}
	direct, err := s.fileProcessor.CheckDirectoriesWithGoFiles(single)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(found)+len(direct))
	var dirs []string
	for _, dir := range append(found, direct...) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

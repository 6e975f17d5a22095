package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/models"
)

// FileProcessor finds package directories and reads, writes and removes
// generated files
type FileProcessor struct {
	fileReader *FileReader
}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{
		fileReader: NewFileReader(),
	}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// DefaultGoFileFilter accepts .go files, excluding tests and generated files
func DefaultGoFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		name := info.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			name != models.GeneratedFileName
	}
}

// GeneratedFileFilter accepts only generated files
func GeneratedFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		return !info.IsDir() && info.Name() == models.GeneratedFileName
	}
}

// DefaultDirectoryFilter skips common directories that shouldn't contain source code
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
		"_examples":    true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}
		name := info.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
		if strings.HasPrefix(name, "_") {
			return false
		}
		return !skipDirs[name]
	}
}

// ScanDirectoriesWithGoFiles walks rootDirs and returns every directory that
// holds Go source, in lexical order without duplicates
func (fp *FileProcessor) ScanDirectoriesWithGoFiles(rootDirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		dirs, err := fp.scanDirectory(rootDir, true, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, dirs...)
	}
	sort.Strings(packageDirs)
	return packageDirs, nil
}

// CheckDirectoriesWithGoFiles is ScanDirectoriesWithGoFiles without recursion
func (fp *FileProcessor) CheckDirectoriesWithGoFiles(dirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, dir := range dirs {
		found, err := fp.scanDirectory(dir, false, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, found...)
	}
	sort.Strings(packageDirs)
	return packageDirs, nil
}

func (fp *FileProcessor) scanDirectory(dir string, recursive bool, visited map[string]bool) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("resolve", dir, err)
	}
	if visited[absDir] {
		return nil, nil
	}
	visited[absDir] = true

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, errors.WrapFileSystemError("read directory", absDir, err)
	}

	var packageDirs []string
	fileFilter := DefaultGoFileFilter()
	directoryFilter := DefaultDirectoryFilter()
	hasGoFiles := false

	for _, entry := range entries {
		entryPath := filepath.Join(absDir, entry.Name())
		if !entry.IsDir() {
			hasGoFiles = hasGoFiles || fileFilter(entryPath, entry)
			continue
		}
		if !recursive || !directoryFilter(entryPath, entry) {
			continue
		}
		subDirs, err := fp.scanDirectory(entryPath, true, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, subDirs...)
	}

	if hasGoFiles {
		packageDirs = append(packageDirs, absDir)
	}
	return packageDirs, nil
}

// CleanDirectories removes generated files below each base directory and
// returns the removed paths
func (fp *FileProcessor) CleanDirectories(baseDirs []string, recursive bool) ([]string, error) {
	var removed []string
	filter := GeneratedFileFilter()
	directoryFilter := DefaultDirectoryFilter()

	for _, baseDir := range baseDirs {
		if baseDir == "" {
			baseDir = "."
		}
		err := filepath.WalkDir(baseDir, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				// Unreadable or vanished directories are skipped.
				return nil
			}
			if entry.IsDir() {
				if path != baseDir && (!recursive || !directoryFilter(path, entry)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !filter(path, entry) {
				return nil
			}
			if err := os.Remove(path); err != nil {
				return errors.WrapFileSystemError("remove", path, err)
			}
			removed = append(removed, path)
			return nil
		})
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// WriteGeneratedFile writes content to path unless the file already holds
// exactly that content. It reports whether the file was written.
func (fp *FileProcessor) WriteGeneratedFile(path string, content []byte) (bool, error) {
	if fp.fileReader.Matches(path, content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.WrapFileSystemError("create directory for", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, errors.WrapFileSystemError("write", path, err)
	}
	fp.fileReader.Forget(path)
	return true, nil
}

// RemoveGeneratedFile deletes the generated file in dir, if there is one,
// and returns its path
func (fp *FileProcessor) RemoveGeneratedFile(dir string) (string, bool, error) {
	path := filepath.Join(dir, models.GeneratedFileName)
	if !fp.fileReader.Exists(path) {
		return "", false, nil
	}
	if err := os.Remove(path); err != nil {
		return "", false, errors.WrapFileSystemError("remove", path, err)
	}
	fp.fileReader.Forget(path)
	return path, true, nil
}

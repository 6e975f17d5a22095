package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// FileReader reads files through a StampCache, so repeated reads of an
// unchanged file hit memory
type FileReader struct {
	contents *StampCache[[]byte]
}

// NewFileReader creates a new FileReader instance with caching
func NewFileReader() *FileReader {
	return &FileReader{contents: NewStampCache[[]byte]()}
}

// ReadFile returns the contents of filePath
func (fr *FileReader) ReadFile(filePath string) ([]byte, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	cleanPath := filepath.Clean(filePath)

	content, err := fr.contents.Load(cleanPath, func(content []byte) ([]byte, error) {
		return content, nil
	})
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", cleanPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath.Base(cleanPath), err)
	}
	return content, nil
}

// Matches reports whether filePath exists and holds exactly content
func (fr *FileReader) Matches(filePath string, content []byte) bool {
	if !fr.Exists(filePath) {
		return false
	}
	current, err := fr.ReadFile(filePath)
	return err == nil && bytes.Equal(current, content)
}

// Exists reports whether filePath names an existing regular file
func (fr *FileReader) Exists(filePath string) bool {
	info, err := os.Stat(filepath.Clean(filePath))
	return err == nil && info.Mode().IsRegular()
}

// Forget drops the cached contents of filePath, for use after writing it
func (fr *FileReader) Forget(filePath string) {
	fr.contents.Forget(filepath.Clean(filePath))
}

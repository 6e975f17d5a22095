package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// GoModParser locates and reads go.mod files. Parsed files are cached until
// they change on disk.
type GoModParser struct {
	fileReader *FileReader
	parsed     *StampCache[*modfile.File]
}

// NewGoModParser creates a new go.mod parser with caching
func NewGoModParser(fileReader *FileReader) *GoModParser {
	return &GoModParser{
		fileReader: fileReader,
		parsed:     NewStampCache[*modfile.File](),
	}
}

// ParseModuleName extracts the module path from a go.mod file
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	cleanPath := filepath.Clean(goModPath)
	if filepath.Base(cleanPath) != "go.mod" {
		return "", fmt.Errorf("file is not a go.mod file: %s", goModPath)
	}

	modFile, err := p.parsed.Load(cleanPath, func(content []byte) (*modfile.File, error) {
		parsed, err := modfile.ParseLax(cleanPath, content, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to parse go.mod file: %w", err)
		}
		return parsed, nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read go.mod file: %w", err)
		}
		return "", err
	}

	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in %s", cleanPath)
	}
	return modFile.Module.Mod.Path, nil
}

// FindGoModFile searches for go.mod starting from startDir and walking up
func (p *GoModParser) FindGoModFile(startDir string) (string, error) {
	currentDir := filepath.Clean(startDir)

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if p.fileReader.Exists(goModPath) {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod file not found above %s", startDir)
}

// ValidModulePath checks a module path given on the command line or in
// argon.yaml
func ValidModulePath(field string) Validator[string] {
	return func(value string) error {
		if err := module.CheckImportPath(value); err != nil {
			return invalid(field, value, err.Error())
		}
		return nil
	}
}

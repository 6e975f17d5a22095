package cli

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/utils"
)

// Module identifies the Go module packages are resolved against
type Module struct {
	Path string // module path
	Root string // directory containing go.mod
}

// ModuleResolver handles resolving Go module information
type ModuleResolver struct {
	goMod   *utils.GoModParser
	workDir func() (string, error)
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{
		goMod:   utils.NewGoModParser(utils.NewFileReader()),
		workDir: os.Getwd,
	}
}

// ResolveModule locates go.mod by walking up from startDir, or from the
// working directory when startDir is empty. A non-empty customModule replaces
// the module path read from go.mod; without a go.mod the start directory is
// treated as the module root.
func (r *ModuleResolver) ResolveModule(customModule, startDir string) (Module, error) {
	currentDir, err := r.startDir(startDir)
	if err != nil {
		return Module{}, err
	}

	goModPath, findErr := r.goMod.FindGoModFile(currentDir)
	if findErr != nil {
		if customModule == "" {
			return Module{}, errors.WrapConfigurationError("go.mod", "locate", findErr).
				WithSuggestion("Run from inside a Go module or pass --module")
		}
		return Module{Path: customModule, Root: currentDir}, nil
	}

	root := filepath.Dir(goModPath)
	if customModule != "" {
		return Module{Path: customModule, Root: root}, nil
	}

	name, err := r.goMod.ParseModuleName(goModPath)
	if err != nil {
		return Module{}, errors.WrapConfigurationError("go.mod", "read", err).
			WithContext("path", goModPath).
			WithSuggestion("Check your go.mod file exists and is valid").
			WithSuggestion("Try specifying --module flag explicitly")
	}
	return Module{Path: name, Root: root}, nil
}

func (r *ModuleResolver) startDir(dir string) (string, error) {
	if dir == "" {
		wd, err := r.workDir()
		if err != nil {
			return "", errors.WrapFileSystemError("resolve", "working directory", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", dir, err)
	}
	return abs, nil
}

// BuildPackagePath builds the full import path for a package directory
func (r *ModuleResolver) BuildPackagePath(module Module, packageDir string) (string, error) {
	absPackageDir, err := filepath.Abs(packageDir)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", packageDir, err)
	}

	relPath, err := filepath.Rel(module.Root, absPackageDir)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", packageDir, err)
	}

	importPath := filepath.ToSlash(relPath)
	if importPath == "." {
		return module.Path, nil
	}
	if importPath == ".." || strings.HasPrefix(importPath, "../") {
		return "", errors.Newf(errors.ConfigurationErrorCode, "package %s is outside module %s", packageDir, module.Path).
			WithContext("module_root", module.Root)
	}
	return path.Join(module.Path, importPath), nil
}

package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/generator"
	"github.com/toyz/argon/internal/parser"
	"github.com/toyz/argon/internal/utils"
)

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	PackagesScanned   int
	PackagesProcessed int
	ProvidersFound    int
	ArgumentsFound    int
	GeneratedFiles    []string
	UnchangedFiles    []string
	RemovedFiles      []string
}

// Stats returns the summary lines in display order
func (s GenerationSummary) Stats() []utils.Stat {
	return []utils.Stat{
		{Label: "Packages scanned", Value: s.PackagesScanned},
		{Label: "Packages with providers", Value: s.PackagesProcessed},
		{Label: "Providers found", Value: s.ProvidersFound},
		{Label: "Arguments described", Value: s.ArgumentsFound},
		{Label: "Files generated", Value: len(s.GeneratedFiles)},
		{Label: "Files unchanged", Value: len(s.UnchangedFiles)},
		{Label: "Files removed", Value: len(s.RemovedFiles)},
	}
}

// Generator coordinates the CLI generation process
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	parser         parser.AnnotationParser
	codeGenerator  generator.CodeGenerator
	files          *utils.FileProcessor
	diagnostics    *utils.DiagnosticSystem
	summary        GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:        NewDirectoryScanner(),
		moduleResolver: NewModuleResolver(),
		parser:         parser.NewParser(),
		codeGenerator:  generator.NewGenerator(),
		files:          utils.NewFileProcessor(),
		diagnostics:    diagnostics,
	}
}

// Summary returns the generation summary of the last run
func (g *Generator) Summary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process. Every package is processed
// even when an earlier one fails; the failures are returned together.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}

	if err := config.Validate(); err != nil {
		return err
	}
	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Scanning directories: %v", config.Directories)

	g.diagnostics.StartProgress("Resolving module name")
	startDir, _ := splitPattern(config.Directories[0])
	module, err := g.moduleResolver.ResolveModule(config.ModuleName, startDir)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return err
	}
	g.diagnostics.EndProgress(true, module.Path)

	g.diagnostics.StartProgress("Scanning directories for Go packages")
	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return err
	}
	g.summary.PackagesScanned = len(packageDirs)
	if len(packageDirs) == 0 {
		g.diagnostics.EndProgress(false, "")
		g.diagnostics.Warn("No Go packages found in specified directories")
		return nil
	}
	g.diagnostics.EndProgress(true, pluralize(len(packageDirs), "package"))

	failures := errors.NewMultipleErrors()
	g.diagnostics.Indent()
	for _, dir := range packageDirs {
		if err := g.processPackage(module, dir); err != nil {
			g.diagnostics.Error("%s: %v", g.relative(module, dir), err)
			failures.Add(err)
		}
	}
	g.diagnostics.Unindent()

	g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))
	return failures.ErrorOrNil()
}

func (g *Generator) processPackage(module Module, dir string) error {
	importPath, err := g.moduleResolver.BuildPackagePath(module, dir)
	if err != nil {
		return err
	}

	metadata, err := g.parser.ParseDirectory(dir, importPath)
	if err != nil {
		return err
	}
	if len(metadata.Providers) == 0 {
		g.diagnostics.Debug("No providers in %s", importPath)
		return g.removeStale(dir)
	}

	file, err := g.codeGenerator.Generate(metadata)
	if err != nil {
		return err
	}
	written, err := g.files.WriteGeneratedFile(file.FilePath, []byte(file.Content))
	if err != nil {
		return err
	}

	g.summary.PackagesProcessed++
	g.summary.ProvidersFound += len(metadata.Providers)
	for _, provider := range metadata.Providers {
		g.summary.ArgumentsFound += len(provider.Parameters)
	}
	if !written {
		g.summary.UnchangedFiles = append(g.summary.UnchangedFiles, file.FilePath)
		g.diagnostics.Debug("%s is up to date", g.relative(module, file.FilePath))
		return nil
	}
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, file.FilePath)
	g.diagnostics.Verbose("Wrote %s (%s)", g.relative(module, file.FilePath), pluralize(file.Providers, "provider"))
	return nil
}

// removeStale deletes a generated file left behind after the last provider
// of a package was removed
func (g *Generator) removeStale(dir string) error {
	stale, removed, err := g.files.RemoveGeneratedFile(dir)
	if err != nil || !removed {
		return err
	}
	g.summary.RemovedFiles = append(g.summary.RemovedFiles, stale)
	return nil
}

func (g *Generator) relative(module Module, path string) string {
	if rel, err := filepath.Rel(module.Root, path); err == nil {
		return rel
	}
	return path
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

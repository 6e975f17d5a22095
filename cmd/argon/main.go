package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/toyz/argon/internal/cli"
	"github.com/toyz/argon/internal/models"
	"github.com/toyz/argon/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("argon", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		config     cli.Config
		configPath string
		help       bool
	)
	flags.StringVarP(&config.ModuleName, "module", "m", "", "Custom module name for imports (defaults to go.mod module)")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output and detailed error reporting")
	flags.BoolVarP(&config.Quiet, "quiet", "q", false, "Only show errors and final results")
	flags.BoolVar(&config.Clean, "clean", false, "Delete all "+models.GeneratedFileName+" files from the specified directories")
	flags.BoolVar(&config.NoColor, "no-color", false, "Disable colored output")
	flags.StringVarP(&configPath, "config", "c", "", "Project configuration file (defaults to ./"+cli.DefaultConfigFile+" when present; its directories are relative to the file)")
	flags.BoolVarP(&help, "help", "h", false, "Show help information")
	flags.Usage = func() { usage(flags, stderr) }

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if help {
		flags.Usage()
		return 0
	}

	config.Directories = flags.Args()

	reporter := cli.NewDiagnosticReporter(config.Verbose)
	reporter.SetOutput(stderr)

	required := configPath != ""
	if !required {
		configPath = cli.DefaultConfigFile
	}
	fileConfig, err := cli.LoadConfigFile(configPath, required)
	if err != nil {
		reporter.ReportError(err)
		return 1
	}
	config = config.Merge(fileConfig)

	if len(config.Directories) == 0 {
		fmt.Fprintf(stderr, "Error: At least one directory path is required\n\n")
		flags.Usage()
		return 1
	}

	diagnostics := config.Diagnostics()
	diagnostics.SetOutput(stdout, stderr)
	reporter = cli.NewDiagnosticReporter(config.Verbose)
	reporter.SetOutput(stderr)
	if config.NoColor {
		reporter.Plain()
	}

	if err := config.Validate(); err != nil {
		reporter.ReportError(err)
		return 1
	}

	diagnostics.Section("Argon Argument Generator")

	if config.Clean {
		diagnostics.StartProgress("Cleaning generated files")
		removed, err := cli.NewCleaner().CleanGeneratedFiles(config.Directories)
		if err != nil {
			diagnostics.EndProgress(false, "")
			reporter.ReportError(err)
			return 1
		}
		diagnostics.EndProgress(true, "")
		for _, file := range removed {
			diagnostics.Verbose("Removed %s", file)
		}
		diagnostics.Success("Removed %d %s files", len(removed), models.GeneratedFileName)
		return 0
	}

	if config.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(config.Directories, ", "))
		if config.ModuleName != "" {
			diagnostics.List("Custom module: %s", config.ModuleName)
		}
		diagnostics.List("Verbose mode: enabled")
	}

	diagnostics.Subsection("Code Generation")
	generator := cli.NewGenerator(diagnostics)
	if err := generator.Run(config); err != nil {
		reporter.ReportError(err)
		return 1
	}

	summary := generator.Summary()
	diagnostics.Summary("Generation Complete!", summary.Stats())

	if diagnostics.Level() >= utils.DiagnosticVerbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}
	for _, file := range summary.RemovedFiles {
		diagnostics.Info("Removed stale %s", file)
	}
	return 0
}

func usage(flags *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: argon [options] <directory-paths...>\n\n")
	fmt.Fprintf(w, "Argon Argument Generator\n")
	fmt.Fprintf(w, "Scans Go files for //axon::provide constructors and writes %s with their argument descriptors.\n\n", models.GeneratedFileName)
	fmt.Fprintf(w, "Options:\n")
	flags.PrintDefaults()
	fmt.Fprintf(w, "\nArguments:\n")
	fmt.Fprintf(w, "  directory-paths    One or more directories to scan for annotated Go files\n")
	fmt.Fprintf(w, "                     Supports Go-style patterns like './...' for recursive scanning\n")
	fmt.Fprintf(w, "\nAnnotations:\n")
	fmt.Fprintf(w, "  //axon::provide [-Name=Alias]             Describe this constructor\n")
	fmt.Fprintf(w, "  //axon::named <param> <name>              Qualify a parameter by name\n")
	fmt.Fprintf(w, "  //axon::qualifier <param> <Kind> [-k=v]   Qualify a parameter with a custom kind\n")
	fmt.Fprintf(w, "  //axon::meta <param> [-Kind=k] [-k=v]     Attach metadata to a parameter\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  argon ./...                                  # Scan everything recursively\n")
	fmt.Fprintf(w, "  argon ./internal/store                       # Scan one directory\n")
	fmt.Fprintf(w, "  argon --module github.com/myorg/myapp ./...  # Specify custom module name\n")
	fmt.Fprintf(w, "  argon --clean ./...                          # Delete generated files\n")
	fmt.Fprintf(w, "  argon -c argon.yaml                          # Read directories from a config file\n")
}

package cli

import (
	"strings"

	"github.com/toyz/argon/internal/errors"
	"github.com/toyz/argon/internal/utils"
)

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Go files.
	// A trailing "/..." scans recursively.
	Directories []string

	// ModuleName is the custom module name for imports
	// If empty, will be determined from go.mod file
	ModuleName string

	// Verbose enables detailed logging and error reporting
	Verbose bool

	// Quiet only shows errors and the final result
	Quiet bool

	// Clean removes generated files instead of generating them
	Clean bool

	// NoColor disables colors and timestamps in all output
	NoColor bool
}

// Validate checks the configuration before anything touches the disk
func (c Config) Validate() error {
	dirs := utils.NewValidatorChain(
		utils.SliceNotEmpty[string]("directories"),
		utils.ValidateEach("directories", utils.NotEmpty("directory")),
		utils.ValidateEach("directories", utils.DirectoryPattern("pattern")),
	)
	if err := dirs.Validate(c.Directories); err != nil {
		return errors.WrapConfigurationError("directories", "validate", err).
			WithSuggestion("Pass at least one directory, for example ./...")
	}

	module := utils.Conditional(func(s string) bool { return s != "" }, utils.ValidModulePath("module"))
	if err := module(c.ModuleName); err != nil {
		return errors.WrapConfigurationError("module", "validate", err).
			WithSuggestion("Use a module path such as github.com/myorg/myapp")
	}

	if c.Verbose && c.Quiet {
		return errors.New(errors.ConfigurationErrorCode, "--verbose and --quiet cannot be combined")
	}
	return nil
}

// Diagnostics creates the diagnostic system selected by the output flags
func (c Config) Diagnostics() *utils.DiagnosticSystem {
	var diagnostics *utils.DiagnosticSystem
	switch {
	case c.Quiet:
		diagnostics = utils.NewQuietDiagnostics()
	case c.Verbose:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if c.NoColor {
		diagnostics.Plain()
	}
	return diagnostics
}

// splitPattern separates a Go-style "dir/..." pattern into its base directory
func splitPattern(pattern string) (dir string, recursive bool) {
	if pattern == "..." {
		return ".", true
	}
	if strings.HasSuffix(pattern, "/...") {
		dir = strings.TrimSuffix(pattern, "/...")
		if dir == "" {
			dir = "/"
		}
		return dir, true
	}
	return pattern, false
}

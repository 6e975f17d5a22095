package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/toyz/argon/internal/errors"
)

// DefaultConfigFile is read from the working directory when --config is not given
const DefaultConfigFile = "argon.yaml"

// FileConfig is the project configuration stored in argon.yaml. Command line
// flags take precedence over every field.
type FileConfig struct {
	// Directories to scan when none are given on the command line. Relative
	// entries are resolved against the directory holding the file.
	Directories []string `yaml:"directories"`

	// Module overrides the module path from go.mod.
	Module string `yaml:"module,omitempty"`

	// Verbose and Quiet select the default output level.
	Verbose bool `yaml:"verbose,omitempty"`
	Quiet   bool `yaml:"quiet,omitempty"`
}

// LoadConfigFile reads an argon.yaml file. A missing file is an error only
// when required is set.
func LoadConfigFile(path string, required bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &FileConfig{}, nil
		}
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	var cfg FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.WrapConfigurationError(filepath.Base(path), "parse", err).
			WithContext("path", path).
			WithSuggestion("Known keys: directories, module, verbose, quiet")
	}

	base := filepath.Dir(path)
	for i, pattern := range cfg.Directories {
		dir, recursive := splitPattern(pattern)
		if filepath.IsAbs(dir) {
			continue
		}
		cfg.Directories[i] = filepath.Join(base, dir)
		if recursive {
			cfg.Directories[i] += "/..."
		}
	}
	return &cfg, nil
}

// Merge fills the fields the command line left unset
func (c Config) Merge(file *FileConfig) Config {
	if file == nil {
		return c
	}
	if len(c.Directories) == 0 {
		c.Directories = append([]string(nil), file.Directories...)
	}
	if c.ModuleName == "" {
		c.ModuleName = file.Module
	}
	if !c.Verbose && !c.Quiet {
		c.Verbose = file.Verbose
		c.Quiet = file.Quiet
	}
	return c
}

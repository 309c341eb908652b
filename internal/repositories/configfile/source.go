/*
Package configfile loads the alias configuration from a TOML or YAML file.

The canonical location is <user config dir>/epithet/epithet.toml, with
epithet.yaml and epithet.yml accepted as alternatives and the EPITHET_CONFIG
environment variable overriding the search entirely.
*/
package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/ports"
)

// EnvConfigPath overrides the configuration file search with an explicit
// path.
const EnvConfigPath = "EPITHET_CONFIG"

const configDirName = "epithet"

// configNames are the file names probed inside the configuration directory,
// in preference order.
var configNames = []string{"epithet.toml", "epithet.yaml", "epithet.yml"}

// FileSource implements the ConfigSource interface by reading a single
// configuration file from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a new FileSource reading from path. The format is
// chosen by extension: .yaml and .yml decode as YAML, everything else as
// TOML.
func NewFileSource(path string) (ports.ConfigSource, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}
	return &FileSource{path: path}, nil
}

// DefaultPath returns the configuration file to load: the EPITHET_CONFIG
// override when set, otherwise the first name in the configuration directory
// that exists. When none exists the canonical TOML path is returned, so the
// caller's failure to read it names the expected location.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	dir := filepath.Join(configBaseDir(), configDirName)
	for _, name := range configNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(dir, configNames[0])
}

func configBaseDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// Load reads and parses the configuration file. Unlike optional data files,
// a missing configuration is an error here: without it no alias can resolve.
func (s *FileSource) Load() (*alias.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", s.path, err)
	}

	var cfg *alias.Config
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(data)
	default:
		cfg, err = decodeTOML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}

	return cfg, nil
}

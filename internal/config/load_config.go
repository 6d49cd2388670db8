package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "ssec.yaml"

// ErrInvalidConfig is returned when the config file parses but holds unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// LoadConfig reads the YAML file at path and overlays it on Default().
// A missing file is only an error when required is true, i.e. when the user
// named the file explicitly.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Fields absent from the file keep their defaults
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every tool has a name and a parseable min_version,
// every timeout is positive, and the file paths are non-empty and relative.
func (c Config) Validate() error {
	for i, t := range c.Tools {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: tools[%d] has no name", ErrInvalidConfig, i)
		}
		if t.MinVersion != "" {
			if _, err := semver.NewVersion(t.MinVersion); err != nil {
				return fmt.Errorf("%w: tools[%d] (%s) min_version %q: %v", ErrInvalidConfig, i, t.Name, t.MinVersion, err)
			}
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.InstallTimeout <= 0 {
		return fmt.Errorf("%w: install_timeout must be positive, got %s", ErrInvalidConfig, c.InstallTimeout)
	}
	if strings.TrimSpace(c.Editor) == "" {
		return fmt.Errorf("%w: editor must not be empty", ErrInvalidConfig)
	}
	if err := relativeFile("extensions_file", c.ExtensionsFile); err != nil {
		return err
	}
	return relativeFile("onboard_file", c.OnboardFile)
}

// relativeFile rejects an empty or absolute path; both files are joined onto a directory.
func relativeFile(field, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, field)
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %s must be relative, got %s", ErrInvalidConfig, field, path)
	}
	return nil
}

// ToolNames returns the configured tool names in order.
func (c Config) ToolNames() []string {
	names := make([]string, 0, len(c.Tools))
	for _, t := range c.Tools {
		names = append(names, t.Name)
	}
	return names
}

package config

import (
	"time"

	"ssec-cli/internal/installer"
	"ssec-cli/internal/onboard"
	"ssec-cli/internal/runner"
)

// Tool is a command-line tool whose availability is reported by diagnostics.
// - Name: Executable name looked up on PATH (e.g., git, docker).
// - MinVersion: Optional lowest acceptable semantic version (e.g., 2.30.0).
type Tool struct {
	Name       string `yaml:"name"`
	MinVersion string `yaml:"min_version"`
}

// Config is the top-level structure returned after loading ssec.yaml.
// Every field has a default, so an absent file yields a usable Config.
type Config struct {
	Tools          []Tool        `yaml:"tools"`           // Tools probed by diagnostics, in display order
	Timeout        time.Duration `yaml:"timeout"`         // Bound on every probe and status command
	InstallTimeout time.Duration `yaml:"install_timeout"` // Bound on each editor extension install
	Editor         string        `yaml:"editor"`          // Editor CLI used for --install-extension
	ExtensionsFile string        `yaml:"extensions_file"` // Recommendations file, relative to the repo root
	OnboardFile    string        `yaml:"onboard_file"`    // Onboarding log, relative to the working directory
}

// DefaultTools is the tool list probed when the config file does not name one.
var DefaultTools = []string{"git", "gh", "docker", "python", "pip", "uv", "pixi", "code"}

// Default returns the configuration used when no ssec.yaml is present.
func Default() Config {
	tools := make([]Tool, 0, len(DefaultTools))
	for _, name := range DefaultTools {
		tools = append(tools, Tool{Name: name})
	}
	return Config{
		Tools:          tools,
		Timeout:        runner.DefaultTimeout,
		InstallTimeout: 2 * time.Minute,
		Editor:         "code",
		ExtensionsFile: installer.ExtensionsFile,
		OnboardFile:    onboard.DefaultFile,
	}
}

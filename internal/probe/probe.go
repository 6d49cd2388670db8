// Package probe detects whether a tool is installed and which version it reports.
package probe

import (
	"context"
	"fmt"
	"strings"

	"ssec-cli/internal/logger"
	"ssec-cli/internal/runner"
)

// UnknownVersion is reported when a tool exists but no probe produced a version.
const UnknownVersion = "Unknown version"

// notFoundFormat is the Error text for a tool that cannot be resolved on PATH.
const notFoundFormat = "tool '%s' not found in PATH"

// VersionArgs are the argument sets tried, in order, to elicit a version string.
var VersionArgs = [][]string{
	{"--version"},
	{"-v"},
	{"-V"},
	{"version"},
}

// ToolCheckResult is the outcome of probing one tool.
type ToolCheckResult struct {
	Name       string
	Installed  bool
	Location   string // resolved executable path, empty when not installed
	Version    string // first line of the winning probe, or UnknownVersion
	Error      string // set only when the tool was not found
	MinVersion string // configured minimum, if any
	Outdated   bool   // true when Version parses and is below MinVersion
}

// Prober locates tools through a runner.Runner.
type Prober struct {
	Runner runner.Runner
}

// New returns a Prober backed by r.
func New(r runner.Runner) *Prober {
	return &Prober{Runner: r}
}

// Locate resolves name on PATH and, when found, probes it for a version.
// A tool that resolves is always reported installed, even if every probe fails.
func (p *Prober) Locate(ctx context.Context, name string) ToolCheckResult {
	res := ToolCheckResult{Name: name}

	path, err := p.Runner.LookPath(name)
	if err != nil {
		logger.Debug("[DEBUG] LookPath %s: %v\n", name, err)
		res.Error = fmt.Sprintf(notFoundFormat, name)
		return res
	}

	res.Installed = true
	res.Location = path
	res.Version = p.version(ctx, path)
	return res
}

// version runs path with each of VersionArgs until one exits 0 with output.
func (p *Prober) version(ctx context.Context, path string) string {
	for _, args := range VersionArgs {
		out := p.Runner.Run(ctx, "", path, args...)
		if !out.OK() {
			continue
		}
		trimmed := strings.TrimSpace(out.Stdout)
		if trimmed == "" {
			continue
		}
		line, _, _ := strings.Cut(trimmed, "\n")
		return strings.TrimSpace(line)
	}
	return UnknownVersion
}

// Summary renders the result the way the availability table shows it:
// "<path> (<version>)" when installed, the error otherwise.
func (r ToolCheckResult) Summary() string {
	if !r.Installed {
		return r.Error
	}
	return fmt.Sprintf("%s (%s)", r.Location, r.Version)
}

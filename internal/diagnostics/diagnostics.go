// Package diagnostics runs the fixed sequence of environment reports:
// platform, tool availability, git status, then GitHub CLI auth status.
package diagnostics

import (
	"context"
	"io"

	"ssec-cli/internal/config"
	"ssec-cli/internal/logger"
	"ssec-cli/internal/probe"
	"ssec-cli/internal/report"
	"ssec-cli/internal/runner"
)

// Diagnostics holds everything one run needs.
type Diagnostics struct {
	Runner   runner.Runner
	Out      io.Writer
	Tools    []config.Tool
	Dir      string                     // directory git status runs in
	Platform func() report.PlatformInfo // platform source, report.CollectPlatform by default
}

// New returns a Diagnostics that reports on tools from the working directory dir.
func New(r runner.Runner, out io.Writer, tools []config.Tool, dir string) *Diagnostics {
	return &Diagnostics{Runner: r, Out: out, Tools: tools, Dir: dir, Platform: report.CollectPlatform}
}

// Run writes every section in order. No section can stop the ones after it.
func (d *Diagnostics) Run(ctx context.Context) {
	report.Platform(d.Out, d.Platform())
	report.Tools(d.Out, d.CheckTools(ctx))

	for _, s := range []report.Status{report.GitStatus, report.AuthStatus} {
		outcome := s.Report(ctx, d.Out, d.Runner, d.Dir)
		logger.Debug("[DEBUG] %s: %s\n", s.Title, outcome)
	}
}

// CheckTools probes every configured tool in order and applies its minimum version.
func (d *Diagnostics) CheckTools(ctx context.Context) []probe.ToolCheckResult {
	p := probe.New(d.Runner)
	results := make([]probe.ToolCheckResult, 0, len(d.Tools))
	for _, t := range d.Tools {
		res, err := probe.CheckMinimum(p.Locate(ctx, t.Name), t.MinVersion)
		if err != nil {
			logger.Warn("[WARN] %v\n", err)
		}
		results = append(results, res)
	}
	return results
}

package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ssec-cli/internal/runner"
)

// Outcome classifies how a status command went.
type Outcome int

const (
	HasOutput Outcome = iota
	Empty
	Failed
)

func (o Outcome) String() string {
	switch o {
	case HasOutput:
		return "output"
	case Empty:
		return "empty"
	default:
		return "failed"
	}
}

// Status is a reporter that runs one command and prints its output as a section.
type Status struct {
	Title   string
	Name    string
	Args    []string
	Empty   string // inline message when the command succeeds silently
	Failure string // inline prefix when the command fails
	// UseStderr shows stderr when stdout is empty; gh writes auth status there.
	UseStderr bool
}

// GitStatus reports `git status` for the working directory.
var GitStatus = Status{
	Title:   "Git Status",
	Name:    "git",
	Args:    []string{"status"},
	Empty:   "Clean working directory.",
	Failure: "Unable to retrieve git status",
}

// AuthStatus reports `gh auth status`.
var AuthStatus = Status{
	Title:     "GitHub CLI Auth Status",
	Name:      "gh",
	Args:      []string{"auth", "status"},
	Empty:     "Not authenticated.",
	Failure:   "Unable to retrieve auth status",
	UseStderr: true,
}

// Report runs the command in dir and writes the section to w.
// Failures are rendered inline and never returned.
func (s Status) Report(ctx context.Context, w io.Writer, r runner.Runner, dir string) Outcome {
	res := r.Run(ctx, dir, s.Name, s.Args...)
	if !res.OK() {
		reason := res.Err.Error()
		if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
			reason = fmt.Sprintf("%s (%s)", reason, firstLine(stderr))
		}
		heading(w, s.Title, red.Sprintf("%s: %s", s.Failure, reason))
		return Failed
	}

	out := strings.TrimSpace(res.Stdout)
	if out == "" && s.UseStderr {
		out = strings.TrimSpace(res.Stderr)
	}
	if out == "" {
		heading(w, s.Title, s.Empty)
		return Empty
	}
	heading(w, s.Title, "")
	fenced(w, out)
	return HasOutput
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

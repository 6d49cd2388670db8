// Package onboard records that a developer has set up their environment in a repository.
package onboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"ssec-cli/internal/installer"
	"ssec-cli/internal/logger"
	"ssec-cli/internal/runner"
)

// DefaultFile is the onboarding log written in the working directory.
const DefaultFile = "onboarded.md"

// TimestampLayout formats record timestamps as YYYY-MM-DD HH:MM:SS.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one onboarding event.
type Record struct {
	User      string
	Commit    string
	Timestamp time.Time
}

// Line renders the record as it is appended to the log, including the newline.
func (r Record) Line() string {
	return fmt.Sprintf("- User %s onboarded at commit %s on %s\n", r.User, r.Commit, r.Timestamp.Format(TimestampLayout))
}

// Recorder installs recommended extensions and appends an onboarding record.
type Recorder struct {
	Runner    runner.Runner
	Installer *installer.Installer
	Out       io.Writer
	File      string           // log file name relative to the working directory
	Now       func() time.Time // clock, local time
}

// New returns a Recorder writing DefaultFile with the wall clock.
func New(r runner.Runner, inst *installer.Installer, out io.Writer) *Recorder {
	return &Recorder{Runner: r, Installer: inst, Out: out, File: DefaultFile, Now: time.Now}
}

// Record onboards the developer in cwd and returns the path of the log it appended to.
// Extension installation and the git queries are best effort; only failing to
// write the log itself is returned as an error.
func (r *Recorder) Record(ctx context.Context, cwd string) (string, error) {
	logger.Info("[INFO] Onboarding in %s\n", cwd)

	if r.Installer != nil {
		if _, err := r.Installer.InstallRecommended(ctx, cwd); err != nil {
			logger.Warn("[WARN] Skipping extension install: %v\n", err)
		}
	}

	rec := Record{
		User:      r.query(ctx, cwd, "config", "--get", "user.name"),
		Commit:    r.query(ctx, cwd, "rev-parse", "--short", "HEAD"),
		Timestamp: r.Now(),
	}

	path := filepath.Join(cwd, r.File)
	if err := appendLine(path, rec.Line()); err != nil {
		return path, err
	}

	_, _ = color.New(color.FgGreen).Fprintf(r.Out,
		"Onboarding complete! See %s and create a pull-request with the changes.\n", path)
	return path, nil
}

// query runs a git subcommand in dir and returns its trimmed stdout, or "" on any failure.
func (r *Recorder) query(ctx context.Context, dir string, args ...string) string {
	res := r.Runner.Run(ctx, dir, "git", args...)
	if !res.OK() {
		logger.Debug("[DEBUG] git %s: %v\n", strings.Join(args, " "), res.Err)
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

// appendLine appends line to path, creating the file when absent.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for appending: %w", path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

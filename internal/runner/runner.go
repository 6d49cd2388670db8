// Package runner executes external commands with a bounded timeout and folds
// every outcome (spawn failure, non-zero exit, timeout) into a Result value.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"ssec-cli/internal/logger"
)

// DefaultTimeout bounds a single command when Exec.Timeout is unset.
const DefaultTimeout = 5 * time.Second

// waitDelay is how long Run waits for output pipes to close after the
// process has been killed, in case it left children holding them open.
const waitDelay = 500 * time.Millisecond

// ErrTimeout is wrapped by Result.Err when a command exceeds its time bound.
var ErrTimeout = errors.New("command timed out")

// Result is the outcome of one external command.
// Err is nil only when the process started and exited with status 0.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int // -1 when the process never produced an exit status
	Err      error
}

// OK reports whether the command ran and exited 0.
func (r Result) OK() bool { return r.Err == nil }

// Output returns trimmed stdout, falling back to trimmed stderr when stdout is empty.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stdout); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stderr)
}

// Runner resolves and runs external commands.
type Runner interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, dir, name string, args ...string) Result
}

// Exec runs commands through os/exec.
type Exec struct {
	Timeout time.Duration
}

// New returns an Exec bounded by timeout.
func New(timeout time.Duration) *Exec {
	return &Exec{Timeout: timeout}
}

// LookPath searches PATH using the operating system's resolution rules.
func (e *Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes name with args in dir (the current directory when empty).
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) Result {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	err := cmd.Run()

	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	res.Err = runError(name, err, ctx.Err(), timeout)
	if res.Err != nil {
		logger.Debug("[DEBUG] Command failed: %v\n", res.Err)
	}
	return res
}

// runError turns the outcome of cmd.Run into Result.Err. A command that
// finished cleanly is never a timeout, even if the deadline passed right after.
func runError(name string, err, ctxErr error, timeout time.Duration) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w after %s", name, ErrTimeout, timeout)
	default:
		return fmt.Errorf("%s: %w", name, err)
	}
}

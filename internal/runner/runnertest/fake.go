// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"ssec-cli/internal/runner"
)

// Call records one Run invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Fake is a runner.Runner whose PATH and command outcomes are set up by the test.
// Commands without a scripted result succeed with empty output.
type Fake struct {
	// Paths maps tool names to the location LookPath reports. Missing names are not found.
	Paths map[string]string
	// Results maps a command line ("git status") to its outcome.
	Results map[string]runner.Result
	Calls   []Call
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{Paths: map[string]string{}, Results: map[string]runner.Result{}}
}

// LookPath implements runner.Runner.
func (f *Fake) LookPath(name string) (string, error) {
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Run implements runner.Runner.
func (f *Fake) Run(_ context.Context, dir, name string, args ...string) runner.Result {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)
	if res, ok := f.Results[call.String()]; ok {
		return res
	}
	return runner.Result{}
}

// Fail scripts a command line to exit with status code and the given stderr.
func (f *Fake) Fail(cmdline string, code int, stderr string) {
	f.Results[cmdline] = runner.Result{
		Stderr:   stderr,
		ExitCode: code,
		Err:      fmt.Errorf("%s: exit status %d", cmdline, code),
	}
}

// Succeed scripts a command line to exit 0 with stdout.
func (f *Fake) Succeed(cmdline, stdout string) {
	f.Results[cmdline] = runner.Result{Stdout: stdout}
}

// Commands returns every recorded call as a command line, in order.
func (f *Fake) Commands() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}

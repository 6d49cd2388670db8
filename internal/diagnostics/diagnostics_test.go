package diagnostics

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssec-cli/internal/config"
	"ssec-cli/internal/report"
	"ssec-cli/internal/runner/runnertest"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newDiagnostics(fake *runnertest.Fake, out *bytes.Buffer, tools []config.Tool) *Diagnostics {
	d := New(fake, out, tools, "/work")
	d.Platform = func() report.PlatformInfo {
		return report.PlatformInfo{System: "Linux", Release: "6.8.0", Version: "#1", Machine: "x86_64", Runtime: "go"}
	}
	return d
}

func TestRun_SectionOrder(t *testing.T) {
	fake := runnertest.NewFake()
	fake.Paths["git"] = "/usr/bin/git"
	fake.Succeed("/usr/bin/git --version", "git version 2.43.0\n")
	fake.Succeed("git status", "On branch main\n")
	fake.Succeed("gh auth status", "Logged in\n")
	var out bytes.Buffer

	newDiagnostics(fake, &out, config.Default().Tools).Run(context.Background())

	text := out.String()
	sections := []string{"## Platform", "## Tool availability:", "## Git Status:", "## GitHub CLI Auth Status:"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
	assert.Contains(t, text, "- ✅ git: /usr/bin/git (git version 2.43.0)")
	assert.Contains(t, text, "- ❌ docker: tool 'docker' not found in PATH")
}

func TestRun_MissingGitAndGhStillCompletes(t *testing.T) {
	fake := runnertest.NewFake()
	fake.Fail("git status", -1, `exec: "git": executable file not found in $PATH`)
	fake.Fail("gh auth status", -1, `exec: "gh": executable file not found in $PATH`)
	var out bytes.Buffer

	newDiagnostics(fake, &out, config.Default().Tools).Run(context.Background())

	assert.Equal(t, []string{"git status", "gh auth status"}, fake.Commands())
	assert.Contains(t, out.String(), "## Git Status: Unable to retrieve git status")
	assert.Contains(t, out.String(), "## GitHub CLI Auth Status: Unable to retrieve auth status")
	assert.Equal(t, "/work", fake.Calls[0].Dir)
}

func TestCheckTools_OrderAndMinimum(t *testing.T) {
	fake := runnertest.NewFake()
	fake.Paths["git"] = "/usr/bin/git"
	fake.Paths["gh"] = "/usr/bin/gh"
	fake.Succeed("/usr/bin/git --version", "git version 2.25.1")
	fake.Succeed("/usr/bin/gh --version", "gh version 2.45.0 (2024-03-04)")

	d := newDiagnostics(fake, &bytes.Buffer{}, []config.Tool{
		{Name: "git", MinVersion: "2.30.0"},
		{Name: "uv"},
		{Name: "gh", MinVersion: "not-a-version"},
	})
	got := d.CheckTools(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, "git", got[0].Name)
	assert.True(t, got[0].Outdated)
	assert.Equal(t, "uv", got[1].Name)
	assert.False(t, got[1].Installed)
	assert.Equal(t, "gh", got[2].Name)
	assert.True(t, got[2].Installed)
	assert.False(t, got[2].Outdated)
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssec-cli/internal/config"
	"ssec-cli/internal/logger"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// executeCommand runs the root command with args and returns its stdout.
// Persistent flag state is reset afterwards so tests stay independent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		cfg = config.Default()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInstallExtensions_NoExtensionsFile(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "install-extensions", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "No extensions file found at "+filepath.Join(dir, ".vscode", "extensions.json"))
	assert.NotContains(t, out, "Installed extension")
}

func TestInstallExtensions_RequiresRepoRoot(t *testing.T) {
	_, err := executeCommand(t, "install-extensions")
	assert.Error(t, err)
}

func TestInstallExtensions_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".vscode"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vscode", "extensions.json"), []byte("{"), 0o644))

	_, err := executeCommand(t, "install-extensions", dir)
	assert.ErrorContains(t, err, "malformed extensions file")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "install-extensions", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigOverridesExtensionsFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "ssec.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("extensions_file: tools/extensions.json\n"), 0o644))

	out, err := executeCommand(t, "-c", cfgPath, "install-extensions", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "No extensions file found at "+filepath.Join(dir, "tools", "extensions.json"))
}

func TestOnboard_AppendsRecord(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := executeCommand(t, "onboard")
	require.NoError(t, err)
	_, err = executeCommand(t, "onboard")
	require.NoError(t, err)

	assert.Contains(t, out, "Onboarding complete!")

	data, err := os.ReadFile(filepath.Join(dir, "onboarded.md"))
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.Regexp(t, `^- User .* onboarded at commit .* on \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, string(l))
	}
}

func TestDiagnostics_Completes(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeCommand(t, "diagnostics")

	require.NoError(t, err)
	assert.Contains(t, out, "## Platform")
	assert.Contains(t, out, "## Tool availability:")
	assert.Contains(t, out, "## Git Status:")
	assert.Contains(t, out, "## GitHub CLI Auth Status:")
}

func TestExitCode(t *testing.T) {
	var logs bytes.Buffer
	prev := logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(prev) })

	assert.Equal(t, 0, exitCode(nil))
	assert.Empty(t, logs.String())

	_, err := executeCommand(t, "install-extensions")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, logs.String(), "[ERROR] accepts 1 arg(s), received 0")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

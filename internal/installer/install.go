package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"ssec-cli/internal/logger"
	"ssec-cli/internal/runner"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// Installer installs editor extensions by invoking the editor CLI once per extension.
type Installer struct {
	Runner runner.Runner
	Out    io.Writer
	Editor string // editor CLI, e.g. "code"
	File   string // recommendations file relative to the repo root
}

// New returns an Installer for the given editor CLI using the default recommendations file.
func New(r runner.Runner, out io.Writer, editor string) *Installer {
	return &Installer{Runner: r, Out: out, Editor: editor, File: ExtensionsFile}
}

// Summary lists what an install run did.
type Summary struct {
	Installed []string
	Failed    []string
}

// InstallRecommended installs every extension recommended under rootDir, in file order.
// A missing recommendations file is reported and skipped. A failed install is
// reported with whatever output it produced and the loop moves on. Only an
// unreadable or malformed recommendations file is returned as an error.
func (i *Installer) InstallRecommended(ctx context.Context, rootDir string) (Summary, error) {
	var sum Summary
	path := filepath.Join(rootDir, filepath.FromSlash(i.File))

	extensions, err := LoadRecommendations(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(i.Out, "No extensions file found at %s\n", path)
			return sum, nil
		}
		return sum, err
	}
	logger.Debug("[DEBUG] Found %d recommended extensions in %s\n", len(extensions), path)

	for _, ext := range extensions {
		res := i.Runner.Run(ctx, rootDir, i.Editor, "--install-extension", ext)
		if !res.OK() {
			_, _ = failColor.Fprintf(i.Out, "Failed to install extension %s: %v", ext, res.Err)
			if out := strings.TrimSpace(res.Stdout + "\n" + res.Stderr); out != "" {
				fmt.Fprintf(i.Out, "\n%s", out)
			}
			fmt.Fprintln(i.Out)
			sum.Failed = append(sum.Failed, ext)
			continue
		}
		_, _ = okColor.Fprintf(i.Out, "Installed extension: %s\n", ext)
		sum.Installed = append(sum.Installed, ext)
	}

	if len(extensions) > 0 {
		fmt.Fprintf(i.Out, "%d installed, %d failed\n", len(sum.Installed), len(sum.Failed))
	}
	return sum, nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"ssec-cli/internal/installer"
	"ssec-cli/internal/runner"
)

// installExtensionsCmd installs the editor extensions recommended by a repository.
var installExtensionsCmd = &cobra.Command{
	Use:   "install-extensions <repo_root>",
	Short: "Install VS Code extensions from .vscode/extensions.json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newInstaller(cmd).InstallRecommended(cmd.Context(), args[0])
		return err
	},
}

// newInstaller builds an extension installer from the loaded config.
func newInstaller(cmd *cobra.Command) *installer.Installer {
	inst := installer.New(runner.New(cfg.InstallTimeout), cmd.OutOrStdout(), cfg.Editor)
	inst.File = cfg.ExtensionsFile
	return inst
}

func init() {
	rootCmd.AddCommand(installExtensionsCmd)
}

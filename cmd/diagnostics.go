package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ssec-cli/internal/diagnostics"
	"ssec-cli/internal/runner"
)

// diagnosticsCmd prints platform info, tool availability, git status and gh auth status.
var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Run diagnostics on the current environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		diagnostics.New(runner.New(cfg.Timeout), cmd.OutOrStdout(), cfg.Tools, cwd).Run(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
}

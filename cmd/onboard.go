package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ssec-cli/internal/onboard"
	"ssec-cli/internal/runner"
)

// onboardCmd installs recommended extensions and appends a record to onboarded.md.
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Onboard in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		rec := onboard.New(runner.New(cfg.Timeout), newInstaller(cmd), cmd.OutOrStdout())
		rec.File = cfg.OnboardFile
		_, err = rec.Record(cmd.Context(), cwd)
		return err
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ssec-cli/internal/config"
	"ssec-cli/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the optional YAML configuration file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// cfg is the configuration loaded before any subcommand runs.
var cfg = config.Default()

// rootCmd is the base command for the CLI tool `ssec-cli`.
var rootCmd = &cobra.Command{
	Use:   "ssec-cli",
	Short: "Developer environment diagnostics and onboarding",
	Long: `ssec-cli checks that a workstation has the tools a repository expects,
installs the repository's recommended editor extensions, and records onboarding.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRunE runs before any subcommand: set up logging, then load config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debug)

		// The config file is optional unless the user named one explicitly
		required := cmd.Flags().Changed("config")
		loaded, err := config.LoadConfig(configPath, required)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("[DEBUG] Loaded config: %d tools, timeout %s\n", len(cfg.Tools), cfg.Timeout)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
}

// Execute runs the command tree. Errors are printed and turn into exit status 1;
// sub-step failures inside a command never reach here.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}

// exitCode logs a command error and maps it to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	logger.Error("[ERROR] %v\n", err)
	return 1
}

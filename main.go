package main

import (
	"ssec-cli/cmd" // CLI commands and execution logic live in the cmd package
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// ssec-cli is a developer-environment diagnostics and onboarding tool that:
//   - Reports platform information, the availability and version of a fixed set of tools,
//     the git working tree status, and the GitHub CLI authentication status
//   - Installs the editor extensions recommended by a repository's .vscode/extensions.json
//   - Records an onboarding event as an appended line in onboarded.md
//
// Error handling strategy:
//   - Every external command is bounded by a timeout and its failure is reported inline,
//     so one missing tool never stops the rest of a diagnostics or onboarding run
//   - Only usage errors, a broken config file, or an unparseable extensions file
//     make the process exit with a non-zero status
func main() {
	cmd.Execute()
}

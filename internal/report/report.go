// Package report renders the labeled sections of the diagnostics output.
// Sections are Markdown so the whole run can be pasted into an issue.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	amber = color.New(color.FgYellow)
)

// heading writes "## <title>:" in bold, optionally followed by an inline message.
func heading(w io.Writer, title, inline string) {
	_, _ = bold.Fprintf(w, "\n## %s:", title)
	if inline != "" {
		fmt.Fprintf(w, " %s", inline)
	}
	fmt.Fprintln(w)
}

// fenced writes body inside a ```sh block.
func fenced(w io.Writer, body string) {
	fmt.Fprintln(w, "```sh")
	fmt.Fprintln(w, body)
	fmt.Fprintln(w, "```")
}

package report

import (
	"io"

	"ssec-cli/internal/probe"
)

// Tools writes the tool availability section, one bullet per result.
func Tools(w io.Writer, results []probe.ToolCheckResult) {
	heading(w, "Tool availability", "")
	for _, r := range results {
		switch {
		case !r.Installed:
			_, _ = red.Fprintf(w, "- ❌ %s: %s\n", r.Name, r.Summary())
		case r.Outdated:
			_, _ = amber.Fprintf(w, "- ⚠️ %s: %s, below minimum %s\n", r.Name, r.Summary(), r.MinVersion)
		default:
			_, _ = green.Fprintf(w, "- ✅ %s: %s\n", r.Name, r.Summary())
		}
	}
}

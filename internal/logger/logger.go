package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colors used for each log level.
// Green for progress, bright magenta for warnings, red for errors and cyan for debug output.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// out is where log lines are written. Logs go to stderr so that report text on
// stdout can be redirected into a file or an issue without the noise.
var out io.Writer = os.Stderr

// Info logs informational messages in green color.
func Info(format string, a ...any) { _, _ = infoColor.Fprintf(out, format, a...) }

// Warn logs warning messages in bright magenta color.
func Warn(format string, a ...any) { _, _ = warnColor.Fprintf(out, format, a...) }

// Error logs error messages in red color.
func Error(format string, a ...any) { _, _ = errorColor.Fprintf(out, format, a...) }

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is swapped by Init; until then debug output is discarded.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan messages to the current output.
// When disabled, Debug silently ignores its arguments.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) { _, _ = debugColor.Fprintf(out, format, a...) }
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetOutput redirects all log levels to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Package ui provides leveled terminal output for the CLI. All user-visible
// messages funnel through here so severity markers, color handling, and the
// stdout/stderr split stay consistent across commands. Errors go to stderr;
// everything else goes to stdout.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.RWMutex
	verbose bool

	// Out and ErrOut are swappable for tests.
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// Severity markers. Color is applied at print time so ColorMode changes
// take effect immediately.
var (
	infoMark    = color.New(color.FgCyan)
	successMark = color.New(color.FgGreen)
	warnMark    = color.New(color.FgYellow)
	errorMark   = color.New(color.FgRed, color.Bold)
	dimText     = color.New(color.Faint)
)

// SetVerbose enables or disables Verbose output.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetColorMode applies a color preference: "always", "never", or "auto".
// Auto leaves the library default in place (TTY detection, NO_COLOR).
func SetColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// Info prints an informational message.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", infoMark.Sprint("›"), fmt.Sprintf(format, args...))
}

// Success prints a completion message.
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", successMark.Sprint("✔"), fmt.Sprintf(format, args...))
}

// Warn prints a non-fatal problem to stdout.
func Warn(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", warnMark.Sprint("⚠"), fmt.Sprintf(format, args...))
}

// Error prints a fatal problem to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(ErrOut, "%s %s\n", errorMark.Sprint("✖"), fmt.Sprintf(format, args...))
}

// Step prints a numbered progress line for the generation sequence.
func Step(step, total int, format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n",
		dimText.Sprintf("[%d/%d]", step, total),
		fmt.Sprintf(format, args...))
}

// Verbose prints a trace message when --verbose is set.
func Verbose(format string, args ...interface{}) {
	mu.RLock()
	on := verbose
	mu.RUnlock()
	if !on {
		return
	}
	fmt.Fprintln(Out, dimText.Sprint(fmt.Sprintf(format, args...)))
}

// Plain prints a message with no marker, for free-form blocks such as the
// next-steps epilogue.
func Plain(format string, args ...interface{}) {
	fmt.Fprintf(Out, format+"\n", args...)
}

// Package output provides terminal output formatting utilities for the chog CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// IsInteractive reports whether stdin is a terminal a prompt can be read from.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PrintSuccess prints a green checkmark followed by the message.
func PrintSuccess(out io.Writer, format string, args ...any) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(fmt.Sprintf(format, args...)))
}

// PrintNotice prints an informational line prefixed with a magenta arrow.
func PrintNotice(out io.Writer, format string, args ...any) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", magenta("→"), fmt.Sprintf(format, args...))
}

// PrintWarning prints a yellow warning line.
func PrintWarning(out io.Writer, format string, args ...any) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}

// PrintDebug prints a dim debug line, used as the --debug logger.
func PrintDebug(out io.Writer, format string, args ...any) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(out, dim("[debug] "+fmt.Sprintf(format, args...)))
}

package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// CategoryStyle defines the color and icon for a Keep a Changelog section.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps lowercase section names to their terminal styling.
var categoryStyles = map[string]CategoryStyle{
	"added":      {Color: color.New(color.FgGreen), Icon: "✓"},
	"changed":    {Color: color.New(color.FgBlue), Icon: "~"},
	"deprecated": {Color: color.New(color.FgRed), Icon: "⚠"},
	"removed":    {Color: color.New(color.FgRed), Icon: "✗"},
	"fixed":      {Color: color.New(color.FgYellow), Icon: "⚡"},
	"security":   {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

// DefaultPreviewLines is the number of unreleased lines shown when
// FormatOptions.PreviewLines is zero.
const DefaultPreviewLines = 8

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain        bool // Disable colors and icons
	MaxWidth     int  // Maximum line width (0 = auto-detect)
	PreviewLines int  // Unreleased lines to show (0 = DefaultPreviewLines, <0 = none)
}

// FormatInfo writes a summary of c: the most recent release with its date
// and link, then a preview of the pending unreleased changes.
func FormatInfo(c *Changelog, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeLastRelease(c, w, opts); err != nil {
		return fmt.Errorf("writing last release: %w", err)
	}

	if err := writeUnreleasedPreview(c.Unreleased(), w, opts, width); err != nil {
		return fmt.Errorf("writing unreleased preview: %w", err)
	}

	return nil
}

// writeLastRelease writes the "Last release" line and its link.
func writeLastRelease(c *Changelog, w io.Writer, opts FormatOptions) error {
	last, ok := c.LastRelease()
	if !ok {
		_, err := fmt.Fprintln(w, "Last release: none")
		return err
	}

	header := last.TitleString()
	if date, ok := last.Date(); ok {
		header = fmt.Sprintf("%s (%s)", header, date)
	}
	if !opts.Plain {
		header = color.New(color.Bold).Sprint(header)
	}
	if _, err := fmt.Fprintf(w, "Last release: %s\n", header); err != nil {
		return err
	}

	url, ok := last.URL()
	if !ok {
		return nil
	}
	if !opts.Plain {
		url = color.New(color.FgCyan).Sprint(url)
	}
	_, err := fmt.Fprintf(w, "Link: %s\n", url)
	return err
}

// writeUnreleasedPreview writes the line count of the unreleased body and
// its first lines, with section headings styled per category.
func writeUnreleasedPreview(u *Release, w io.Writer, opts FormatOptions, width int) error {
	content, ok := u.Content()
	if !ok {
		_, err := fmt.Fprintln(w, "Unreleased: no pending changes")
		return err
	}

	lines := strings.Split(content, "\n")
	if _, err := fmt.Fprintf(w, "Unreleased: %s\n", pluralLines(len(lines))); err != nil {
		return err
	}

	limit := opts.PreviewLines
	if limit == 0 {
		limit = DefaultPreviewLines
	}
	if limit < 0 {
		return nil
	}

	shown := lines
	if len(shown) > limit {
		shown = shown[:limit]
	}

	var style CategoryStyle
	for _, line := range shown {
		if name, ok := strings.CutPrefix(line, "### "); ok {
			style = categoryStyles[strings.ToLower(strings.TrimSpace(name))]
			if err := writeCategoryHeader(name, style, w, opts); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(line, style, w, opts, width); err != nil {
			return err
		}
	}

	if hidden := len(lines) - len(shown); hidden > 0 {
		_, err := fmt.Fprintf(w, "  ... %s more\n", pluralLines(hidden))
		return err
	}
	return nil
}

// writeCategoryHeader writes a section heading line from the unreleased body.
func writeCategoryHeader(name string, style CategoryStyle, w io.Writer, opts FormatOptions) error {
	if opts.Plain || style.Color == nil {
		_, err := fmt.Fprintf(w, "  ### %s\n", name)
		return err
	}

	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "  %s %s\n", colored(style.Icon), colored(name))
	return err
}

// writeLine writes a body line, wrapped to width unless plain.
func writeLine(line string, style CategoryStyle, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  "

	if strings.TrimSpace(line) == "" {
		_, err := fmt.Fprintln(w)
		return err
	}

	if opts.Plain || style.Color == nil {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, truncateText(line, width-len(prefix)))
		return err
	}

	wrapped := wrapText(line, width-len(prefix), prefix+"  ")
	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

func pluralLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth runes, using indent for
// continuation lines. Lines break at the last space that fits, or mid-word
// on a rune boundary when there is none.
func wrapText(text string, maxWidth int, indent string) string {
	remaining := []rune(text)
	if maxWidth <= 0 || len(remaining) <= maxWidth {
		return text
	}

	var lines []string
	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, string(remaining[:breakPoint]))
		remaining = []rune(strings.TrimLeft(string(remaining[breakPoint:]), " "))
	}

	if len(remaining) > 0 {
		lines = append(lines, string(remaining))
	}

	return strings.Join(lines, "\n"+indent)
}

// truncateText truncates text to maxLen runes, adding an ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if maxLen < 4 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	return string([]rune(text)[:maxLen-3]) + "..."
}

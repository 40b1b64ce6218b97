package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ariel-frischer/chog/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version, commit, build date, and Go version information for chog",
		Example: `  # Show version info
  chog version

  # Plain output (for scripts)
  chog version --plain`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			plain, _ := cmd.Flags().GetBool("plain")
			if plain {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			printPrettyVersion(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "chog %s\n", version.Version)
	fmt.Fprintf(w, "commit: %s\n", version.Commit)
	fmt.Fprintf(w, "built: %s\n", version.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s\n", version.Platform())
}

// printPrettyVersion prints aligned, colored version details
func printPrettyVersion(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s\n\n", cyan("chog"), dim("Keep a Changelog release tool"))

	info := []struct {
		label string
		value string
	}{
		{"Version", version.Version},
		{"Commit", version.ShortCommit()},
		{"Built", version.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", version.Platform()},
	}
	for _, item := range info {
		fmt.Fprintf(w, "  %s  %s\n", yellow(fmt.Sprintf("%-9s", item.label)), white(item.value))
	}

	fmt.Fprintf(w, "\n%s\n", dim(version.SourceURL))
}

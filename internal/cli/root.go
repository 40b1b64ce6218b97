// Package cli implements the chog command line: cutting a release from the
// unreleased section of a Keep a Changelog file, printing a summary of it,
// and managing chog's configuration.
package cli

import (
	"errors"

	"github.com/ariel-frischer/chog/internal/config"
	clierrors "github.com/ariel-frischer/chog/internal/errors"
	"github.com/ariel-frischer/chog/internal/git"
	"github.com/ariel-frischer/chog/internal/output"
	"github.com/ariel-frischer/chog/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd is the command tree used by Execute.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chog [major | minor | patch | <version>]",
		Short: "Cut releases from a Keep a Changelog file",
		Long: `chog turns the "## [Unreleased]" section of a Keep a Changelog file into a
release section and updates the compare links at the bottom of the file.

Without arguments, chog prints the last release and the pending changes.

The version argument is either a bump kind applied to the last release or an
explicit semantic version that must be greater than it:
  major    1.4.2 -> 2.0.0
  minor    1.4.2 -> 1.5.0
  patch    1.4.2 -> 1.4.3
  2.0.0-rc.1

Settings are read from ~/.config/chog/config.yml, .chog.yml and CHOG_*
environment variables; flags given on the command line take precedence.`,
		Example: `  # Show the last release and pending changes
  chog

  # Release the unreleased changes as the next minor version
  chog minor

  # Preview the result without touching the file
  chog 2.0.0 --dry-run

  # Release without a confirmation prompt and write to another file
  chog patch --force --output dist/CHANGELOG.md`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return clierrors.TooManyArguments(args)
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupDebug(cmd)
		},
		RunE: runRoot,
	}

	pf := cmd.PersistentFlags()
	pf.StringP("path", "p", "CHANGELOG.md", "Changelog file to read")
	pf.StringP("output", "o", "", "Write the result to this file instead of --path")
	pf.BoolP("quiet", "q", false, "Suppress informational output")
	pf.BoolP("force", "f", false, "Do not ask for confirmation")
	pf.BoolP("dry-run", "d", false, "Print the result to stdout instead of writing it")
	pf.String("config", "", "Project config file (default .chog.yml)")
	pf.Bool("debug", false, "Print debug information to stderr")

	f := cmd.Flags()
	f.BoolP("info", "i", false, "Print the last release and pending changes")
	f.String("date", "", "Release date (default today, formatted with date_format)")
	f.String("repo-url", "", "Repository web URL for release links (default: git origin remote)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.Wrap(err, clierrors.Argument, "Run 'chog --help' for usage")
	})

	cmd.AddCommand(newInitCmd(), newConfigCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command and reports any error on stderr.
// Use ExitCode to turn the returned error into a process exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			clierrors.FprintError(rootCmd.ErrOrStderr(), err)
		}
	}
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	info, _ := cmd.Flags().GetBool("info")
	if len(args) == 0 {
		return runInfo(cmd, cfg)
	}
	if info {
		return clierrors.ConflictingFlags("--info", "a version argument")
	}
	return runRelease(cmd, cfg, args[0])
}

// setupDebug installs the git debug logger when --debug is set.
func setupDebug(cmd *cobra.Command) {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug {
		git.SetDebugLogger(nil)
		return
	}
	stderr := cmd.ErrOrStderr()
	git.SetDebugLogger(func(format string, args ...any) {
		output.PrintDebug(stderr, format, args...)
	})
}

// configFlags maps config keys to the flags that override them.
var configFlags = map[string]string{
	"path":     "path",
	"output":   "output",
	"quiet":    "quiet",
	"force":    "force",
	"repo_url": "repo-url",
}

// loadConfig loads the layered configuration with the explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	overrides := make(map[string]interface{})
	for key, name := range configFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := cmd.Flags().GetBool(name)
			overrides[key] = v
		default:
			overrides[key] = f.Value.String()
		}
	}

	projectPath, _ := cmd.Flags().GetString("config")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: projectPath,
		WarningWriter:     cmd.ErrOrStderr(),
		SkipWarnings:      quiet,
		Overrides:         overrides,
	})
	if err != nil {
		return nil, clierrors.ConfigInvalid(err)
	}
	return cfg, nil
}

// logf prints an informational line unless quiet is set.
func logf(cmd *cobra.Command, cfg *config.Configuration, format string, args ...any) {
	if cfg.Quiet {
		return
	}
	output.PrintNotice(cmd.ErrOrStderr(), format, args...)
}

func debugf(cmd *cobra.Command, format string, args ...any) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		output.PrintDebug(cmd.ErrOrStderr(), format, args...)
	}
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ariel-frischer/chog/internal/changelog"
	"github.com/ariel-frischer/chog/internal/config"
	clierrors "github.com/ariel-frischer/chog/internal/errors"
	"github.com/ariel-frischer/chog/internal/git"
	"github.com/ariel-frischer/chog/internal/output"
	"github.com/ariel-frischer/chog/internal/semver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// stdinIsTerminal reports whether a confirmation prompt can be shown.
var stdinIsTerminal = output.IsInteractive

// now is the clock used for default release dates.
var now = time.Now

// runInfo prints the last release and the unreleased preview.
func runInfo(cmd *cobra.Command, cfg *config.Configuration) error {
	text, err := readChangelog(cfg.Path)
	if err != nil {
		return err
	}

	opts := changelog.FormatOptions{Plain: color.NoColor}
	if err := changelog.FormatInfo(changelog.New(text), cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("printing %s: %w", cfg.Path, err)
	}
	return nil
}

// runRelease promotes the unreleased section of the changelog to arg.
func runRelease(cmd *cobra.Command, cfg *config.Configuration, arg string) error {
	next, err := semver.ParseNext(arg)
	if err != nil {
		return clierrors.InvalidVersion(arg, err)
	}

	text, err := readChangelog(cfg.Path)
	if err != nil {
		return err
	}

	log := changelog.New(text)
	if _, ok := changelog.UnreleasedContent(text); !ok {
		return clierrors.NoUnreleasedSection(cfg.Path, changelog.ErrNoUnreleased)
	}

	v, err := log.NextVersion(next)
	if err != nil {
		return versionError(log, err)
	}
	debugf(cmd, "resolved %s to %s", next, v)

	if _, ok := log.Unreleased().Content(); !ok {
		output.PrintWarning(cmd.ErrOrStderr(), "the unreleased section of %s is empty", cfg.Path)
	}

	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = now().Format(cfg.DateFormat)
	}

	promoted, err := changelog.Promote(text, changelog.PromoteOptions{
		Version:   v,
		Date:      date,
		RepoURL:   resolveRepoURL(cmd, cfg),
		TagPrefix: cfg.TagPrefix,
	})
	if err != nil {
		return clierrors.NoUnreleasedSection(cfg.Path, err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		_, err := io.WriteString(cmd.OutOrStdout(), promoted)
		return err
	}

	target := cfg.OutputPath()
	if cfg.Output == "" && !cfg.Force {
		if !stdinIsTerminal() {
			return clierrors.NonInteractive()
		}
		question := fmt.Sprintf("Release %s in %s?", v, target)
		if !promptConfirmation(cmd.InOrStdin(), cmd.ErrOrStderr(), question) {
			logf(cmd, cfg, "Changelog unchanged")
			return nil
		}
	}

	if err := writeChangelog(target, cfg.Path, promoted); err != nil {
		return err
	}

	if !cfg.Quiet {
		output.PrintSuccess(cmd.ErrOrStderr(), "Released %s → %s", v, target)
	}
	return nil
}

// versionError maps NextVersion failures to CLI errors.
func versionError(log *changelog.Changelog, err error) error {
	var notIncreasing *semver.NotIncreasingError
	switch {
	case errors.As(err, &notIncreasing):
		return clierrors.VersionNotIncreasing(err)
	case errors.Is(err, semver.ErrNotSemantic):
		last, _ := log.LastRelease()
		return clierrors.NotSemanticRelease(last.TitleString(), err)
	case errors.Is(err, semver.ErrVersionOverflow):
		return clierrors.VersionOverflow(err)
	default:
		return err
	}
}

// resolveRepoURL returns the configured repository URL or the web URL of the
// origin remote of the repository holding the changelog. Discovery failures
// only disable link creation.
func resolveRepoURL(cmd *cobra.Command, cfg *config.Configuration) string {
	if cfg.RepoURL != "" {
		return cfg.RepoURL
	}

	dir := filepath.Dir(cfg.Path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if !git.IsGitRepository(dir) {
		debugf(cmd, "no repository URL: %s is not in a git repository", dir)
		return ""
	}
	root, err := git.RepositoryRoot(dir)
	if err != nil {
		debugf(cmd, "no repository URL: %v", err)
		return ""
	}
	debugf(cmd, "repository root: %s", root)

	url, err := git.OriginURL(root)
	if err != nil {
		debugf(cmd, "no repository URL: %v", err)
		return ""
	}
	return url
}

// readChangelog reads the changelog file at path.
func readChangelog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", clierrors.ChangelogNotFound(path, err)
		}
		return "", clierrors.WrapWithMessage(err, clierrors.Prerequisite, "reading changelog")
	}
	return string(data), nil
}

// writeChangelog writes text to target, keeping the permissions of source
// when it exists.
func writeChangelog(target, source, text string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(source); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(target, []byte(text), perm); err != nil {
		return clierrors.WriteFailed(target, err)
	}
	return nil
}

// promptConfirmation asks a yes/no question and reports whether the answer was yes.
func promptConfirmation(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

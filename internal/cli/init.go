package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ariel-frischer/chog/internal/changelog"
	clierrors "github.com/ariel-frischer/chog/internal/errors"
	"github.com/ariel-frischer/chog/internal/output"
	"github.com/spf13/cobra"
)

// changelogHeader is the preamble of a new changelog.
const changelogHeader = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new Keep a Changelog file",
		Long: `Create a changelog with the Keep a Changelog preamble and an empty
"## [Unreleased]" section.

The file is written to --path (default CHANGELOG.md). An existing file is only
replaced with --force.`,
		Example: `  # Create CHANGELOG.md
  chog init

  # Print the skeleton instead of writing it
  chog init --dry-run

  # Create docs/CHANGES.md, replacing any existing file
  chog init -p docs/CHANGES.md --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

// NewChangelog builds the skeleton written by chog init.
func NewChangelog() *changelog.Changelog {
	return changelog.NewBuilder().
		Header(changelogHeader).
		Unreleased(changelog.EmptyUnreleased()).
		Build()
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := changelog.RenderMarkdownString(NewChangelog())
	if err != nil {
		return fmt.Errorf("rendering changelog: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}

	target := cfg.OutputPath()
	if _, err := os.Stat(target); err == nil {
		if !cfg.Force {
			return clierrors.ChangelogExists(target)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return clierrors.WrapWithMessage(err, clierrors.Prerequisite, "checking "+target)
	}

	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return clierrors.WriteFailed(target, err)
	}

	if !cfg.Quiet {
		output.PrintSuccess(cmd.ErrOrStderr(), "Created %s", target)
	}
	return nil
}

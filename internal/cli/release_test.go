// Package cli tests release cutting and the changelog summary.
// Related: internal/cli/release.go, internal/cli/root.go
// Tags: cli, release, info, confirmation, links, exit-codes

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/ariel-frischer/chog/internal/errors"
)

const sampleChangelog = `# Changelog

## [Unreleased]

### Added

- Shiny feature

## [1.0.0] - 2024-01-01

- Initial release
`

// sampleReleased returns sampleChangelog with its unreleased changes released as version on date.
func sampleReleased(version, date string) string {
	return `# Changelog

## [Unreleased]

## [` + version + `] - ` + date + `

### Added

- Shiny feature

## [1.0.0] - 2024-01-01

- Initial release
`
}

// NOTE: Do NOT add t.Parallel() - isolate() uses t.Setenv() and package globals.

func TestRoot_Info(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"no arguments": {},
		"info flag":    {args: []string{"--info"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t, false)
			path := filepath.Join(dir, "CHANGELOG.md")
			writeFile(t, path, sampleChangelog)

			res := runCLI(t, dir, "", append([]string{"--path", path}, tt.args...)...)
			require.NoError(t, res.err)

			assert.Contains(t, res.stdout, "Last release: 1.0.0")
			assert.Contains(t, res.stdout, "Shiny feature")
			assert.Equal(t, sampleChangelog, readFile(t, path), "info must not modify the file")
		})
	}
}

func TestRelease_DryRun(t *testing.T) {
	tests := map[string]struct {
		arg     string
		version string
	}{
		"patch":       {arg: "patch", version: "1.0.1"},
		"minor":       {arg: "minor", version: "1.1.0"},
		"major":       {arg: "major", version: "2.0.0"},
		"explicit":    {arg: "1.2.3", version: "1.2.3"},
		"v prefix":    {arg: "v3.0.0", version: "3.0.0"},
		"pre-release": {arg: "2.0.0-rc.1", version: "2.0.0-rc.1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t, false)
			path := filepath.Join(dir, "CHANGELOG.md")
			writeFile(t, path, sampleChangelog)

			res := runCLI(t, dir, "", "--path", path, "--dry-run", "--date", "2024-05-01", tt.arg)
			require.NoError(t, res.err)

			assert.Equal(t, sampleReleased(tt.version, "2024-05-01"), res.stdout)
			assert.Equal(t, sampleChangelog, readFile(t, path))
		})
	}
}

func TestRelease_DefaultDate(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)
	writeFile(t, filepath.Join(dir, ".chog.yml"), "date_format: \"02.01.2006\"\n")

	res := runCLI(t, dir, "", "--path", path, "-d", "minor")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "## [1.1.0] - 01.05.2024\n")
}

func TestRelease_Force(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)

	res := runCLI(t, dir, "", "--path", path, "--force", "--date", "2024-05-01", "minor")
	require.NoError(t, res.err)

	assert.Equal(t, sampleReleased("1.1.0", "2024-05-01"), readFile(t, path))
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Released 1.1.0")
}

func TestRelease_Quiet(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)

	res := runCLI(t, dir, "", "--path", path, "-q", "-f", "patch")
	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)
	assert.Contains(t, readFile(t, path), "## [1.0.1] - 2024-05-01")
}

func TestRelease_Output(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	out := filepath.Join(dir, "dist", "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)
	writeFile(t, out, "stale\n")

	res := runCLI(t, dir, "", "--path", path, "--output", out, "--date", "2024-05-01", "patch")
	require.NoError(t, res.err)

	assert.Equal(t, sampleReleased("1.0.1", "2024-05-01"), readFile(t, out))
	assert.Equal(t, sampleChangelog, readFile(t, path), "source must be left untouched")
}

func TestRelease_Confirmation(t *testing.T) {
	tests := map[string]struct {
		answer      string
		wantWritten bool
	}{
		"yes":          {answer: "y\n", wantWritten: true},
		"yes word":     {answer: "YES\n", wantWritten: true},
		"no":           {answer: "n\n", wantWritten: false},
		"empty":        {answer: "\n", wantWritten: false},
		"closed stdin": {answer: "", wantWritten: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t, true)
			path := filepath.Join(dir, "CHANGELOG.md")
			writeFile(t, path, sampleChangelog)

			res := runCLI(t, dir, tt.answer, "--path", path, "--date", "2024-05-01", "minor")
			require.NoError(t, res.err)
			assert.Contains(t, res.stderr, "Release 1.1.0 in "+path+"? [y/N]")

			if tt.wantWritten {
				assert.Equal(t, sampleReleased("1.1.0", "2024-05-01"), readFile(t, path))
			} else {
				assert.Equal(t, sampleChangelog, readFile(t, path))
				assert.Contains(t, res.stderr, "Changelog unchanged")
			}
		})
	}
}

func TestRelease_NonInteractive(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)

	res := runCLI(t, dir, "y\n", "--path", path, "minor")
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, ExitCode(res.err))

	cliErr := clierrors.AsCLIError(res.err)
	require.NotNil(t, cliErr)
	assert.Equal(t, clierrors.Prerequisite, cliErr.Category)
	assert.Equal(t, sampleChangelog, readFile(t, path))
}

func TestRelease_EmptyUnreleasedWarns(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, "## [Unreleased]\n\n## [0.1.0]\n")

	res := runCLI(t, dir, "", "--path", path, "-d", "--date", "2024-05-01", "patch")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "is empty")
	assert.Equal(t, "## [Unreleased]\n\n## [0.1.1] - 2024-05-01\n\n## [0.1.0]\n", res.stdout)
}

func TestRelease_Errors(t *testing.T) {
	tests := map[string]struct {
		content  string
		missing  bool
		args     []string
		wantCode int
		wantCat  clierrors.ErrorCategory
	}{
		"invalid version": {
			content:  sampleChangelog,
			args:     []string{"banana"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
		"version not increasing": {
			content:  sampleChangelog,
			args:     []string{"0.9.0"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
		"same version": {
			content:  sampleChangelog,
			args:     []string{"1.0.0"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
		"bump from free-form title": {
			content:  "## [Unreleased]\n- x\n\n## [Initial import]\n",
			args:     []string{"patch"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
		"missing changelog": {
			missing:  true,
			args:     []string{"patch"},
			wantCode: ExitFailure,
			wantCat:  clierrors.Prerequisite,
		},
		"no unreleased section": {
			content:  "# Changelog\n\n## [1.0.0]\n",
			args:     []string{"patch"},
			wantCode: ExitFailure,
			wantCat:  clierrors.Prerequisite,
		},
		"too many arguments": {
			content:  sampleChangelog,
			args:     []string{"patch", "minor"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
		"unknown flag": {
			content:  sampleChangelog,
			args:     []string{"--bogus", "patch"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
		"info with version": {
			content:  sampleChangelog,
			args:     []string{"--info", "patch"},
			wantCode: ExitUsage,
			wantCat:  clierrors.Argument,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t, false)
			path := filepath.Join(dir, "CHANGELOG.md")
			if !tt.missing {
				writeFile(t, path, tt.content)
			}

			res := runCLI(t, dir, "", append([]string{"--path", path, "--force"}, tt.args...)...)
			require.Error(t, res.err)
			assert.Equal(t, tt.wantCode, ExitCode(res.err))

			cliErr := clierrors.AsCLIError(res.err)
			require.NotNil(t, cliErr, "expected a CLIError, got %T: %v", res.err, res.err)
			assert.Equal(t, tt.wantCat, cliErr.Category)

			if !tt.missing {
				assert.Equal(t, tt.content, readFile(t, path), "failed release must not modify the file")
			}
		})
	}
}

func TestRelease_RepoURLFlag(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)

	res := runCLI(t, dir, "", "--path", path, "-d", "--date", "2024-05-01",
		"--repo-url", "https://github.com/user/repo", "minor")
	require.NoError(t, res.err)

	want := sampleReleased("1.1.0", "2024-05-01") + "\n" +
		"[Unreleased]: https://github.com/user/repo/compare/v1.1.0...HEAD\n" +
		"[1.1.0]: https://github.com/user/repo/compare/v1.0.0...v1.1.0\n"
	assert.Equal(t, want, res.stdout)
}

func TestRelease_TagPrefixFromConfig(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, "## [Unreleased]\n- x\n")
	writeFile(t, filepath.Join(dir, ".chog.yml"), "tag_prefix: \"\"\nrepo_url: https://example.com/r\n")

	res := runCLI(t, dir, "", "--path", path, "-d", "--date", "2024-05-01", "1.0.0")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[Unreleased]: https://example.com/r/compare/1.0.0...HEAD\n")
	assert.Contains(t, res.stdout, "[1.0.0]: https://example.com/r/releases/tag/1.0.0\n")
}

func TestRelease_LinksFromGitOrigin(t *testing.T) {
	dir := isolate(t, false)
	repoDir := filepath.Join(dir, "project")
	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:user/project.git"},
	})
	require.NoError(t, err)

	path := filepath.Join(repoDir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)

	res := runCLI(t, dir, "", "--path", path, "-f", "--debug", "--date", "2024-05-01", "major")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "[debug] repository root: "+repoDir)

	content := readFile(t, path)
	assert.Contains(t, content, "[Unreleased]: https://github.com/user/project/compare/v2.0.0...HEAD\n")
	assert.Contains(t, content, "[2.0.0]: https://github.com/user/project/compare/v1.0.0...v2.0.0\n")
}

func TestRelease_KeepsFileMode(t *testing.T) {
	dir := isolate(t, false)
	path := filepath.Join(dir, "CHANGELOG.md")
	writeFile(t, path, sampleChangelog)
	require.NoError(t, os.Chmod(path, 0o600))

	res := runCLI(t, dir, "", "--path", path, "-f", "patch")
	require.NoError(t, res.err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPromptConfirmation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  bool
	}{
		"y":              {input: "y\n", want: true},
		"yes with space": {input: "  yes  \n", want: true},
		"no":             {input: "no\n", want: false},
		"no newline":     {input: "y", want: true},
		"eof":            {input: "", want: false},
		"other":          {input: "sure\n", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := promptConfirmation(strings.NewReader(tt.input), &out, "Continue?")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Continue? [y/N] ", out.String())
		})
	}
}

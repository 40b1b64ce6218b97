package errors

import "fmt"

// Common error messages for the chog CLI.
// These templates ensure consistent, actionable error messages.

// VersionUsage is the synopsis shown with version argument errors.
const VersionUsage = "chog [major | minor | patch | <version>]"

// ChangelogNotFound creates an error for a missing changelog file.
func ChangelogNotFound(path string, err error) *CLIError {
	e := NewPrerequisiteError(
		fmt.Sprintf("changelog not found: %s", path),
		"Create one with: chog init",
		"Or point to it with --path <file> or 'path' in .chog.yml",
	)
	e.Err = err
	return e
}

// ChangelogExists creates an error when init would overwrite a file.
func ChangelogExists(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("%s already exists", path),
		"Use --force to overwrite it",
		"Or choose another file with --path <file>",
	)
}

// NoUnreleasedSection creates an error for a changelog without "## [Unreleased]".
func NoUnreleasedSection(path string, err error) *CLIError {
	e := NewPrerequisiteError(
		fmt.Sprintf("%s has no \"## [Unreleased]\" section", path),
		"Add a \"## [Unreleased]\" heading above the latest release",
		"See https://keepachangelog.com for the expected layout",
	)
	e.Err = err
	return e
}

// InvalidVersion creates an error for a version argument that does not parse.
func InvalidVersion(arg string, err error) *CLIError {
	e := NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version argument: %s", arg),
		VersionUsage,
		"Use a bump kind (major, minor, patch) or a version such as 1.4.0 or v2.0.0-rc.1",
	)
	e.Err = err
	return e
}

// VersionNotIncreasing creates an error for a version that is not newer than the last release.
func VersionNotIncreasing(err error) *CLIError {
	e := NewArgumentError(
		err.Error(),
		"Pass a version greater than the last release",
		"Or use a bump kind: chog patch",
	)
	e.Err = err
	return e
}

// NotSemanticRelease creates an error when a bump is requested but the last
// release title is not a version.
func NotSemanticRelease(title string, err error) *CLIError {
	e := NewArgumentErrorWithUsage(
		fmt.Sprintf("cannot bump from release %q: not a semantic version", title),
		VersionUsage,
		"Pass an explicit version instead, e.g. chog 1.0.0",
	)
	e.Err = err
	return e
}

// VersionOverflow creates an error when a bump would exceed the component range.
func VersionOverflow(err error) *CLIError {
	e := NewArgumentError(
		err.Error(),
		"Pass an explicit version instead",
	)
	e.Err = err
	return e
}

// TooManyArguments creates an error for extra positional arguments.
func TooManyArguments(args []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("expected at most one version argument, got %d: %v", len(args), args),
		VersionUsage,
	)
}

// ConflictingFlags creates an error for flags that cannot be used together.
func ConflictingFlags(a, b string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("%s cannot be combined with %s", a, b),
	)
}

// NonInteractive creates an error when confirmation is needed but stdin is not a terminal.
func NonInteractive() *CLIError {
	return NewPrerequisiteError(
		"cannot ask for confirmation: stdin is not a terminal",
		"Use --force to write without confirmation",
		"Or use --dry-run to print the result instead",
	)
}

// ConfigInvalid creates an error for an unreadable or invalid configuration.
func ConfigInvalid(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Check .chog.yml and ~/.config/chog/config.yml",
		"Run 'chog config keys' to list valid options",
	)
}

// WriteFailed creates an error when the result cannot be written.
func WriteFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("failed to write %s", path),
		"Check that the directory exists and is writable",
	)
}

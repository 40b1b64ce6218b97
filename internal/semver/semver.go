// Package semver parses, formats and orders the major.minor.patch[-label]
// versions used as changelog release titles.
//
// Build metadata (+build) is not supported, and labels are opaque: two labels
// compare byte-wise as whole strings, so "pr.10" sorts before "pr.2".
package semver

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// InvalidVersionError reports an input that is not a semantic version.
// Input holds the offending string verbatim, including any "v" prefix.
type InvalidVersionError struct {
	Input string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version: `%s`", e.Input)
}

// Version is an immutable semantic version. Bump operations return new values.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
	// Label is the pre-release qualifier without the leading hyphen.
	// Empty means no label.
	Label string
}

// New returns a version without a label.
func New(major, minor, patch uint16) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// NewWithLabel returns a pre-release version.
func NewWithLabel(major, minor, patch uint16, label string) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Label: label}
}

// Parse reads "major.minor.patch[-label]" with an optional leading "v".
// The label is everything after the first hyphen of the third part and may
// itself contain dots or hyphens.
func Parse(input string) (Version, error) {
	// the error value is only built on a failing path
	invalid := func() error { return &InvalidVersionError{Input: input} }

	s := strings.TrimPrefix(input, "v")

	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return Version{}, invalid()
	}

	major, ok := parsePart(parts[0])
	if !ok {
		return Version{}, invalid()
	}
	minor, ok := parsePart(parts[1])
	if !ok {
		return Version{}, invalid()
	}

	patchPart, label, hasLabel := strings.Cut(parts[2], "-")
	patch, ok := parsePart(patchPart)
	if !ok {
		return Version{}, invalid()
	}
	if hasLabel && label == "" {
		return Version{}, invalid()
	}

	return Version{Major: major, Minor: minor, Patch: patch, Label: label}, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for literals in tests and defaults.
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// parsePart accepts only decimal digits that fit in 16 bits.
func parsePart(s string) (uint16, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// String renders the version without a "v" prefix.
func (v Version) String() string {
	if v.Label != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Label)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsPrerelease reports whether the version carries a label.
func (v Version) IsPrerelease() bool {
	return v.Label != ""
}

// Compare returns -1, 0 or +1. Numeric parts are compared in order; on a tie
// a version without a label is greater than one with a label, and two labels
// compare lexicographically.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.Label == other.Label:
		return 0
	case v.Label == "":
		return 1
	case other.Label == "":
		return -1
	default:
		return strings.Compare(v.Label, other.Label)
	}
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether both versions are identical.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

package semver

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrVersionOverflow is returned when a bump would overflow a 16-bit component.
	ErrVersionOverflow = errors.New("version component overflow")

	// ErrNotSemantic is returned when a bump kind is applied to a release whose
	// title is not a semantic version.
	ErrNotSemantic = errors.New("last release is not a semantic version")
)

// NotIncreasingError is returned when a requested version does not sort
// strictly above the previous release.
type NotIncreasingError struct {
	Previous  Version
	Requested Version
}

func (e *NotIncreasingError) Error() string {
	return fmt.Sprintf("next version %s must be greater than %s", e.Requested, e.Previous)
}

// Bump is the kind of version increment requested for the next release.
type Bump int

const (
	// BumpPatch increments the patch number (x.y.Z).
	BumpPatch Bump = iota
	// BumpMinor increments the minor number (x.Y.0).
	BumpMinor
	// BumpMajor increments the major number (X.0.0).
	BumpMajor
	// BumpCustom uses an explicitly provided version.
	BumpCustom
)

func (b Bump) String() string {
	switch b {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	case BumpCustom:
		return "custom"
	default:
		return fmt.Sprintf("Bump(%d)", int(b))
	}
}

// Next is a resolved request for the next release version.
// Custom is only meaningful when Kind is BumpCustom.
type Next struct {
	Kind   Bump
	Custom Version
}

// ParseNext maps "major", "minor" and "patch" to their bump kinds and parses
// anything else as a custom version.
func ParseNext(s string) (Next, error) {
	switch s {
	case "major":
		return Next{Kind: BumpMajor}, nil
	case "minor":
		return Next{Kind: BumpMinor}, nil
	case "patch":
		return Next{Kind: BumpPatch}, nil
	}

	v, err := Parse(s)
	if err != nil {
		return Next{}, err
	}
	return Next{Kind: BumpCustom, Custom: v}, nil
}

// String renders the request the way it would be typed on the command line.
func (n Next) String() string {
	if n.Kind == BumpCustom {
		return n.Custom.String()
	}
	return n.Kind.String()
}

// Apply computes the next version from prev. A nil prev means no release
// exists yet and bumps start from 0.0.0.
//
// Labels are dropped by bumps. A pre-release whose lower components are
// already zero is promoted to its release instead of being incremented, so
// 1.0.0-beta bumped by major, minor or patch gives 1.0.0.
func (n Next) Apply(prev *Version) (Version, error) {
	if n.Kind == BumpCustom {
		if prev != nil && n.Custom.Compare(*prev) <= 0 {
			return Version{}, &NotIncreasingError{Previous: *prev, Requested: n.Custom}
		}
		return n.Custom, nil
	}

	base := Version{}
	if prev != nil {
		base = *prev
	}
	pre := base.IsPrerelease()

	switch n.Kind {
	case BumpMajor:
		if pre && base.Minor == 0 && base.Patch == 0 {
			return New(base.Major, 0, 0), nil
		}
		major, err := inc(base.Major)
		if err != nil {
			return Version{}, err
		}
		return New(major, 0, 0), nil
	case BumpMinor:
		if pre && base.Patch == 0 {
			return New(base.Major, base.Minor, 0), nil
		}
		minor, err := inc(base.Minor)
		if err != nil {
			return Version{}, err
		}
		return New(base.Major, minor, 0), nil
	case BumpPatch:
		if pre {
			return New(base.Major, base.Minor, base.Patch), nil
		}
		patch, err := inc(base.Patch)
		if err != nil {
			return Version{}, err
		}
		return New(base.Major, base.Minor, patch), nil
	default:
		return Version{}, fmt.Errorf("unknown bump kind %d", int(n.Kind))
	}
}

func inc(n uint16) (uint16, error) {
	if n == math.MaxUint16 {
		return 0, ErrVersionOverflow
	}
	return n + 1, nil
}

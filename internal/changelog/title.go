package changelog

import (
	"strings"

	"github.com/ariel-frischer/chog/internal/semver"
)

// UnreleasedName is the canonical title of the unreleased section.
const UnreleasedName = "Unreleased"

// TitleKind distinguishes the two variants of a ReleaseTitle.
type TitleKind int

const (
	// TitleText is a free-form title such as "Unreleased".
	TitleText TitleKind = iota
	// TitleVersion is a semantic version title.
	TitleVersion
)

// ReleaseTitle is either a free-form title or a semantic version.
//
// Titles are totally ordered: versions follow semver.Version ordering, text
// titles compare lexicographically, and every text title ranks above every
// version.
type ReleaseTitle struct {
	kind    TitleKind
	text    Text
	version semver.Version
}

// ParseTitle classifies s as a version when it parses as one and as a
// free-form title otherwise. The text form borrows s.
func ParseTitle(s string) ReleaseTitle {
	if v, err := semver.Parse(s); err == nil {
		return VersionTitle(v)
	}
	return ReleaseTitle{kind: TitleText, text: Borrow(s)}
}

// ParseTitleOwned is ParseTitle with an owned copy of s.
func ParseTitleOwned(s string) ReleaseTitle {
	return ParseTitle(s).Detach()
}

// TextTitle returns a free-form title without attempting a version parse.
func TextTitle(s string) ReleaseTitle {
	return ReleaseTitle{kind: TitleText, text: Borrow(s)}
}

// VersionTitle wraps a semantic version.
func VersionTitle(v semver.Version) ReleaseTitle {
	return ReleaseTitle{kind: TitleVersion, version: v}
}

// UnreleasedTitle returns the canonical "Unreleased" title.
// Always use this instead of parsing the literal.
func UnreleasedTitle() ReleaseTitle {
	return TextTitle(UnreleasedName)
}

// Kind returns the variant.
func (t ReleaseTitle) Kind() TitleKind {
	return t.kind
}

// Version returns the semantic version for TitleVersion titles.
func (t ReleaseTitle) Version() (semver.Version, bool) {
	if t.kind != TitleVersion {
		return semver.Version{}, false
	}
	return t.version, true
}

// IsUnreleased reports whether this is the canonical unreleased title.
func (t ReleaseTitle) IsUnreleased() bool {
	return t.kind == TitleText && t.text.String() == UnreleasedName
}

// String formats the inner variant. Versions are rendered without a "v".
func (t ReleaseTitle) String() string {
	if t.kind == TitleVersion {
		return t.version.String()
	}
	return t.text.String()
}

// Compare returns -1, 0 or +1.
func (t ReleaseTitle) Compare(other ReleaseTitle) int {
	switch {
	case t.kind == TitleText && other.kind == TitleVersion:
		return 1
	case t.kind == TitleVersion && other.kind == TitleText:
		return -1
	case t.kind == TitleText:
		return strings.Compare(t.text.String(), other.text.String())
	default:
		return t.version.Compare(other.version)
	}
}

// Equal reports whether both titles are the same variant with equal contents.
func (t ReleaseTitle) Equal(other ReleaseTitle) bool {
	return t.Compare(other) == 0
}

// Detach returns a title that owns all of its strings.
func (t ReleaseTitle) Detach() ReleaseTitle {
	switch t.kind {
	case TitleVersion:
		t.version.Label = strings.Clone(t.version.Label)
	default:
		t.text = t.text.Detach()
	}
	return t
}

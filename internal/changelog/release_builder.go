package changelog

import "github.com/ariel-frischer/chog/internal/semver"

// ReleaseBuilder assembles a Release. Every method takes and returns the
// builder by value, so a partially configured builder is never shared.
//
//	r := NewVersionRelease(v).
//		Date("2024-01-15").
//		URL("https://example.com/v1.0.0").
//		Content(body).
//		Build()
//
// The plain setters borrow their input; the *Owned variants copy it.
type ReleaseBuilder struct {
	release Release
}

// NewRelease starts a release whose title is parsed from title.
func NewRelease(title string) ReleaseBuilder {
	return newReleaseBuilder(ParseTitle(title))
}

// NewReleaseOwned starts a release whose title is parsed from an owned copy of title.
func NewReleaseOwned(title string) ReleaseBuilder {
	return newReleaseBuilder(ParseTitleOwned(title))
}

// NewVersionRelease starts a release titled with v.
func NewVersionRelease(v semver.Version) ReleaseBuilder {
	return newReleaseBuilder(VersionTitle(v))
}

// NewUnreleasedRelease starts a release with the canonical unreleased title.
func NewUnreleasedRelease() ReleaseBuilder {
	return newReleaseBuilder(UnreleasedTitle())
}

func newReleaseBuilder(title ReleaseTitle) ReleaseBuilder {
	return ReleaseBuilder{release: Release{title: title}}
}

// URL sets the release link.
func (b ReleaseBuilder) URL(url string) ReleaseBuilder {
	b.release.url = TrimBorrow(url)
	return b
}

// URLOwned sets the release link from an owned copy.
func (b ReleaseBuilder) URLOwned(url string) ReleaseBuilder {
	b.release.url = TrimOwn(url)
	return b
}

// Content sets the release body.
func (b ReleaseBuilder) Content(content string) ReleaseBuilder {
	b.release.content = TrimBorrow(content)
	return b
}

// ContentOwned sets the release body from an owned copy.
func (b ReleaseBuilder) ContentOwned(content string) ReleaseBuilder {
	b.release.content = TrimOwn(content)
	return b
}

// Date sets the release date.
func (b ReleaseBuilder) Date(date string) ReleaseBuilder {
	b.release.date = TrimBorrow(date)
	return b
}

// DateOwned sets the release date from an owned copy.
func (b ReleaseBuilder) DateOwned(date string) ReleaseBuilder {
	b.release.date = TrimOwn(date)
	return b
}

// Build returns the assembled release.
func (b ReleaseBuilder) Build() Release {
	return b.release
}

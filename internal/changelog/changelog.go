package changelog

// Changelog is a Keep a Changelog document: an optional header, the
// unreleased entry, the published releases in document order (normally
// newest first) and trailing links that belong to no release.
//
// The unreleased entry always carries the canonical title and no date.
// Releases are never re-sorted; use CompareReleases to sort or IsOrdered to
// validate.
type Changelog struct {
	header     Text
	unreleased Release
	releases   []Release
	miscLinks  []Text
}

// Default returns an empty document.
func Default() *Changelog {
	return &Changelog{unreleased: EmptyUnreleased()}
}

// New extracts the unreleased body and the most recent release from raw
// markdown. Only the release title and link are recovered; header, dates
// and older releases are left empty. Missing sections are not an error.
//
// The result borrows from text.
func New(text string) *Changelog {
	c := Default()

	if body, ok := UnreleasedContent(text); ok {
		c.unreleased = UnreleasedWithContent(body)
	}
	if last, ok := LastRelease(text); ok {
		c.releases = []Release{last}
	}

	return c
}

// Header returns the text above the first release section.
func (c *Changelog) Header() (string, bool) {
	return c.header.Get()
}

// Unreleased returns the unreleased entry for reading or editing in place.
// The title and date invariants are restored by SetUnreleased, not here, so
// callers editing through the pointer should only touch the link and body.
func (c *Changelog) Unreleased() *Release {
	return &c.unreleased
}

// SetUnreleased replaces the unreleased entry, forcing the canonical title
// and clearing any date.
func (c *Changelog) SetUnreleased(r Release) {
	r.title = UnreleasedTitle()
	r.date = Text{}
	c.unreleased = r
}

// Releases returns the published releases in document order.
func (c *Changelog) Releases() []Release {
	return c.releases
}

// LastRelease returns the first release in document order.
func (c *Changelog) LastRelease() (Release, bool) {
	if len(c.releases) == 0 {
		return Release{}, false
	}
	return c.releases[0], true
}

// MiscLinks returns the trailing links that belong to no release.
func (c *Changelog) MiscLinks() []string {
	links := make([]string, len(c.miscLinks))
	for i, l := range c.miscLinks {
		links[i] = l.String()
	}
	return links
}

// IsOrdered reports whether releases run strictly from newest to oldest.
func (c *Changelog) IsOrdered() bool {
	for i := 1; i < len(c.releases); i++ {
		if c.releases[i-1].Compare(c.releases[i]) <= 0 {
			return false
		}
	}
	return true
}

// Equal compares two documents field by field.
func (c *Changelog) Equal(other *Changelog) bool {
	if !c.header.Equal(other.header) || !c.unreleased.Equal(other.unreleased) {
		return false
	}
	if len(c.releases) != len(other.releases) || len(c.miscLinks) != len(other.miscLinks) {
		return false
	}
	for i := range c.releases {
		if !c.releases[i].Equal(other.releases[i]) {
			return false
		}
	}
	for i := range c.miscLinks {
		if !c.miscLinks[i].Equal(other.miscLinks[i]) {
			return false
		}
	}
	return true
}

// Detach returns a deep copy that owns all of its strings.
func (c *Changelog) Detach() *Changelog {
	out := &Changelog{
		header:     c.header.Detach(),
		unreleased: c.unreleased.Detach(),
	}
	if c.releases != nil {
		out.releases = make([]Release, len(c.releases))
		for i, r := range c.releases {
			out.releases[i] = r.Detach()
		}
	}
	if c.miscLinks != nil {
		out.miscLinks = make([]Text, len(c.miscLinks))
		for i, l := range c.miscLinks {
			out.miscLinks[i] = l.Detach()
		}
	}
	return out
}

package changelog

// Builder assembles a Changelog programmatically. Like ReleaseBuilder, each
// method works on a copy of the builder and returns it.
type Builder struct {
	header     Text
	unreleased Release
	releases   []Release
	miscLinks  []Text
}

// NewBuilder starts from an empty document.
func NewBuilder() Builder {
	return Builder{unreleased: EmptyUnreleased()}
}

// Build returns the assembled document. The builder's slices are copied so
// later use of the builder cannot alias the result.
func (b Builder) Build() *Changelog {
	return &Changelog{
		header:     b.header,
		unreleased: b.unreleased,
		releases:   append([]Release(nil), b.releases...),
		miscLinks:  append([]Text(nil), b.miscLinks...),
	}
}

// Header sets the document header.
func (b Builder) Header(header string) Builder {
	b.header = TrimBorrow(header)
	return b
}

// HeaderOwned sets the document header from an owned copy.
func (b Builder) HeaderOwned(header string) Builder {
	b.header = TrimOwn(header)
	return b
}

// Unreleased sets the unreleased entry, forcing the canonical title and
// clearing any date.
func (b Builder) Unreleased(r Release) Builder {
	r.title = UnreleasedTitle()
	r.date = Text{}
	b.unreleased = r
	return b
}

// AddRelease appends a release.
func (b Builder) AddRelease(r Release) Builder {
	// capped slice: the append copies, so earlier builder values are unaffected
	b.releases = append(b.releases[:len(b.releases):len(b.releases)], r)
	return b
}

// Releases replaces all releases.
func (b Builder) Releases(releases []Release) Builder {
	b.releases = append([]Release(nil), releases...)
	return b
}

// AddMiscLink appends a trailing link line.
func (b Builder) AddMiscLink(link string) Builder {
	b.miscLinks = append(b.miscLinks[:len(b.miscLinks):len(b.miscLinks)], Borrow(link))
	return b
}

// AddMiscLinkOwned appends an owned copy of a trailing link line.
func (b Builder) AddMiscLinkOwned(link string) Builder {
	b.miscLinks = append(b.miscLinks[:len(b.miscLinks):len(b.miscLinks)], Own(link))
	return b
}

// MiscLinks replaces all trailing links.
func (b Builder) MiscLinks(links []string) Builder {
	b.miscLinks = make([]Text, len(links))
	for i, l := range links {
		b.miscLinks[i] = Borrow(l)
	}
	return b
}

// MiscLinksOwned replaces all trailing links with owned copies.
func (b Builder) MiscLinksOwned(links []string) Builder {
	b.miscLinks = make([]Text, len(links))
	for i, l := range links {
		b.miscLinks[i] = Own(l)
	}
	return b
}

package changelog

// Release is a single changelog entry. Construct one with a ReleaseBuilder or
// the Unreleased constructors.
//
// URL, date and content are trimmed on the way in and an empty value is
// stored as absent.
type Release struct {
	title   ReleaseTitle
	url     Text
	date    Text
	content Text
}

// Title returns the release title.
func (r Release) Title() ReleaseTitle {
	return r.title
}

// TitleString returns the formatted title.
func (r Release) TitleString() string {
	return r.title.String()
}

// URL returns the release link.
func (r Release) URL() (string, bool) {
	return r.url.Get()
}

// Date returns the release date as written in the document.
func (r Release) Date() (string, bool) {
	return r.date.Get()
}

// Content returns the release body.
func (r Release) Content() (string, bool) {
	return r.content.Get()
}

// IsUnreleased reports whether the release carries the unreleased title.
func (r Release) IsUnreleased() bool {
	return r.title.IsUnreleased()
}

// SetURL replaces the link, borrowing the trimmed input.
func (r *Release) SetURL(url string) {
	r.url = TrimBorrow(url)
}

// SetContent replaces the body, borrowing the trimmed input.
func (r *Release) SetContent(content string) {
	r.content = TrimBorrow(content)
}

// MutContent returns a pointer to the body for in-place editing. An absent
// body becomes an empty owned string first, so the pointer is never nil.
//
// Edits made through the pointer are not re-trimmed.
func (r *Release) MutContent() *string {
	if !r.content.set {
		r.content = Own("")
	}
	return &r.content.value
}

// Compare orders releases by title.
func (r Release) Compare(other Release) int {
	return r.title.Compare(other.title)
}

// Equal reports whether every field matches, regardless of whether the
// strings are borrowed or owned.
func (r Release) Equal(other Release) bool {
	return r.title.Equal(other.title) &&
		r.url.Equal(other.url) &&
		r.date.Equal(other.date) &&
		r.content.Equal(other.content)
}

// Detach returns a copy that owns all of its strings. Call it before the
// source document is dropped or reused.
func (r Release) Detach() Release {
	return Release{
		title:   r.title.Detach(),
		url:     r.url.Detach(),
		date:    r.date.Detach(),
		content: r.content.Detach(),
	}
}

// CompareReleases orders releases by title, for use with slices.SortFunc.
func CompareReleases(a, b Release) int {
	return a.Compare(b)
}

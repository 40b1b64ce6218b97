package changelog

// The Unreleased* constructors always produce the canonical unreleased title
// and never a date, so a Changelog's unreleased entry cannot be built wrong.

// UnreleasedWith returns an unreleased release with a link and a body.
func UnreleasedWith(url, content string) Release {
	return unreleased(TrimBorrow(url), TrimBorrow(content))
}

// UnreleasedWithURL returns an unreleased release with only a link.
func UnreleasedWithURL(url string) Release {
	return unreleased(TrimBorrow(url), Text{})
}

// UnreleasedWithContent returns an unreleased release with only a body.
func UnreleasedWithContent(content string) Release {
	return unreleased(Text{}, TrimBorrow(content))
}

// UnreleasedWithOwned is UnreleasedWith with owned copies.
func UnreleasedWithOwned(url, content string) Release {
	return unreleased(TrimOwn(url), TrimOwn(content))
}

// UnreleasedWithURLOwned is UnreleasedWithURL with an owned copy.
func UnreleasedWithURLOwned(url string) Release {
	return unreleased(TrimOwn(url), Text{})
}

// UnreleasedWithContentOwned is UnreleasedWithContent with an owned copy.
func UnreleasedWithContentOwned(content string) Release {
	return unreleased(Text{}, TrimOwn(content))
}

// EmptyUnreleased returns an unreleased release with no link and no body.
func EmptyUnreleased() Release {
	return unreleased(Text{}, Text{})
}

func unreleased(url, content Text) Release {
	return Release{
		title:   UnreleasedTitle(),
		url:     url,
		content: content,
	}
}

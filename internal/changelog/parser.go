package changelog

import "strings"

const (
	// UnreleasedHeading marks the start of the unreleased section.
	UnreleasedHeading = "## [Unreleased]"
	// UnreleasedLinkPrefix starts the reference link line of the unreleased section.
	UnreleasedLinkPrefix = "[Unreleased]:"

	releasePrefix = "## ["
)

// UnreleasedContent returns the raw body of the unreleased section, untrimmed.
//
// The body starts on the line after UnreleasedHeading and ends before the
// next release heading, the "[Unreleased]:" link line, or the end of text,
// whichever comes first. It reports false when the heading is missing or is
// the last line without a trailing newline. An empty section yields "" and
// true.
func UnreleasedContent(text string) (string, bool) {
	idx := strings.Index(text, UnreleasedHeading)
	if idx < 0 {
		return "", false
	}

	nl := strings.IndexByte(text[idx:], '\n')
	if nl < 0 {
		return "", false
	}
	start := idx + nl + 1
	rest := text[start:]

	end := len(rest)
	for _, boundary := range []string{releasePrefix, UnreleasedLinkPrefix} {
		if i := strings.Index(rest, boundary); i >= 0 && i < end {
			end = i
		}
	}
	return rest[:end], true
}

// LastRelease returns the most recent release: the first "## [X]" heading
// after the unreleased heading, or the first one anywhere when there is no
// unreleased section. Only the title and link are filled in.
func LastRelease(text string) (Release, bool) {
	search := text
	if idx := strings.Index(text, UnreleasedHeading); idx >= 0 {
		search = text[idx+len(UnreleasedHeading):]
	}

	bracketed, ok := findReleaseTitle(search)
	if !ok {
		return Release{}, false
	}

	return Release{
		title: ParseTitle(bracketed[1 : len(bracketed)-1]),
		url:   findReleaseURL(text, bracketed),
	}, true
}

// findReleaseTitle returns the first release heading's title including its
// brackets, e.g. "[1.0.0]".
func findReleaseTitle(text string) (string, bool) {
	idx := strings.Index(text, releasePrefix)
	if idx < 0 {
		return "", false
	}
	open := idx + len(releasePrefix) - 1

	end := strings.IndexByte(text[open:], ']')
	if end < 0 {
		return "", false
	}
	return text[open : open+end+1], true
}

// findReleaseURL scans backwards for the last "[X]:" reference definition or
// "[X](" inline link and returns its trimmed target.
func findReleaseURL(text, bracketed string) Text {
	limit := len(text)
	for {
		i := strings.LastIndex(text[:limit], bracketed)
		if i < 0 {
			return Text{}
		}
		limit = i

		next := i + len(bracketed)
		if next >= len(text) {
			continue
		}

		switch text[next] {
		case ':':
			rest := text[next+1:]
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
				rest = rest[:nl]
			}
			return TrimBorrow(rest)
		case '(':
			rest := text[next+1:]
			if end := strings.IndexByte(rest, ')'); end >= 0 {
				return TrimBorrow(rest[:end])
			}
		}
	}
}

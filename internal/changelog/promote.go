package changelog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/chog/internal/semver"
)

// ErrNoUnreleased is returned when a document has no unreleased section to promote.
var ErrNoUnreleased = errors.New(`changelog has no "## [Unreleased]" section`)

// PromoteOptions describes the release being cut.
type PromoteOptions struct {
	Version semver.Version
	// Date is written after the heading as "## [1.2.0] - <Date>". Empty omits it.
	Date string
	// RepoURL is used to create links when the document has no
	// "[Unreleased]:" compare link to derive them from.
	RepoURL string
	// TagPrefix is prepended to versions in compare refs, typically "v".
	TagPrefix string
}

// Promote turns the unreleased section of text into a release section for
// opts.Version and leaves an empty unreleased section above it. Everything
// outside the heading and the link definitions is preserved byte for byte.
//
// Link handling:
//   - "[Unreleased]: <base>/compare/<ref>...HEAD" is moved forward to the
//     new tag and a "[<version>]" compare link from <ref> is added below it.
//   - Without an unreleased link, links are created from RepoURL if set.
//   - Otherwise links are left alone.
//
// Promote does not check that the version is newer than the last release;
// resolve it with semver.Next.Apply first.
func Promote(text string, opts PromoteOptions) (string, error) {
	idx := strings.Index(text, UnreleasedHeading)
	if idx < 0 {
		return "", ErrNoUnreleased
	}

	eol := "\n"
	var insertAt int
	if nl := strings.IndexByte(text[idx:], '\n'); nl >= 0 {
		insertAt = idx + nl + 1
		if nl > 0 && text[idx+nl-1] == '\r' {
			eol = "\r\n"
		}
	} else {
		text += eol
		insertAt = len(text)
	}

	previous, hasPrevious := lastReleaseHeading(text)

	heading := fmt.Sprintf("## [%s]", opts.Version)
	if opts.Date != "" {
		heading += " - " + opts.Date
	}
	out := text[:insertAt] + eol + heading + eol + text[insertAt:]

	nextRef := opts.TagPrefix + opts.Version.String()

	if start, end, ok := findLine(out, UnreleasedLinkPrefix); ok {
		url := strings.TrimSpace(out[start+len(UnreleasedLinkPrefix) : end])
		base, prevRef, ok := splitCompareHead(url)
		if !ok {
			return out, nil
		}
		lines := fmt.Sprintf("%s %s/compare/%s...HEAD%s[%s]: %s/compare/%s...%s",
			UnreleasedLinkPrefix, base, nextRef, eol, opts.Version, base, prevRef, nextRef)
		return out[:start] + lines + out[end:], nil
	}

	if opts.RepoURL == "" {
		return out, nil
	}

	base := strings.TrimSuffix(opts.RepoURL, "/")
	releaseLink := fmt.Sprintf("%s/releases/tag/%s", base, nextRef)
	if hasPrevious {
		if prev, err := semver.Parse(previous); err == nil {
			prevRef := opts.TagPrefix + prev.String()
			releaseLink = fmt.Sprintf("%s/compare/%s...%s", base, prevRef, nextRef)
		}
	}
	lines := fmt.Sprintf("%s %s/compare/%s...HEAD%s[%s]: %s",
		UnreleasedLinkPrefix, base, nextRef, eol, opts.Version, releaseLink)

	if hasPrevious {
		if start, _, ok := findLine(out, "["+previous+"]:"); ok {
			return out[:start] + lines + eol + out[start:], nil
		}
	}
	return appendLinks(out, lines, eol), nil
}

// lastReleaseHeading returns the raw bracketed text of the most recent
// release heading, without the brackets.
func lastReleaseHeading(text string) (string, bool) {
	search := text
	if idx := strings.Index(text, UnreleasedHeading); idx >= 0 {
		search = text[idx+len(UnreleasedHeading):]
	}
	bracketed, ok := findReleaseTitle(search)
	if !ok {
		return "", false
	}
	return bracketed[1 : len(bracketed)-1], true
}

// findLine locates the first line starting with prefix and returns the
// offsets of its start and of its end (excluding the line terminator).
func findLine(text, prefix string) (start, end int, ok bool) {
	offset := 0
	for {
		i := strings.Index(text[offset:], prefix)
		if i < 0 {
			return 0, 0, false
		}
		start = offset + i
		if start == 0 || text[start-1] == '\n' {
			end = len(text)
			if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
				end = start + nl
			}
			end -= trailingCR(text[start:end])
			return start, end, true
		}
		offset = start + len(prefix)
	}
}

func trailingCR(line string) int {
	if strings.HasSuffix(line, "\r") {
		return 1
	}
	return 0
}

// splitCompareHead splits "<base>/compare/<ref>...HEAD".
func splitCompareHead(url string) (base, ref string, ok bool) {
	base, tail, found := strings.Cut(url, "/compare/")
	if !found {
		return "", "", false
	}
	ref, found = strings.CutSuffix(tail, "...HEAD")
	if !found || ref == "" {
		return "", "", false
	}
	return base, ref, true
}

// appendLinks adds link definitions at the end of the document, joining an
// existing trailing block of definitions when there is one.
func appendLinks(text, lines, eol string) string {
	trimmed := strings.TrimRight(text, "\r\n")
	lastLine := trimmed[strings.LastIndexByte(trimmed, '\n')+1:]

	sep := eol + eol
	if isLinkDefinition(lastLine) {
		sep = eol
	}
	return trimmed + sep + lines + eol
}

func isLinkDefinition(line string) bool {
	if !strings.HasPrefix(line, "[") {
		return false
	}
	closing := strings.Index(line, "]:")
	return closing > 1
}

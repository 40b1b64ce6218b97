package changelog

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown writes c as a Keep a Changelog markdown document.
//
// Sections are separated by a blank line. The footer lists the unreleased
// link, one reference link per release that has a URL, then the misc links
// verbatim. Rendering is deterministic: the same document always produces
// the same bytes.
func RenderMarkdown(c *Changelog, w io.Writer) error {
	if err := renderHeader(c, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	if err := renderRelease(&c.unreleased, w); err != nil {
		return fmt.Errorf("rendering unreleased section: %w", err)
	}

	for i := range c.releases {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := renderRelease(&c.releases[i], w); err != nil {
			return fmt.Errorf("rendering release %s: %w", c.releases[i].TitleString(), err)
		}
	}

	if err := renderFooterLinks(c, w); err != nil {
		return fmt.Errorf("rendering footer links: %w", err)
	}

	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(c *Changelog) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(c, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderHeader writes the header followed by a blank line.
func renderHeader(c *Changelog, w io.Writer) error {
	header, ok := c.header.Get()
	if !ok {
		return nil
	}
	_, err := io.WriteString(w, header+"\n\n")
	return err
}

// renderRelease writes a single section heading and its body.
func renderRelease(r *Release, w io.Writer) error {
	if _, err := io.WriteString(w, formatReleaseHeader(r)+"\n"); err != nil {
		return err
	}

	content, ok := r.content.Get()
	if !ok || content == "" {
		return nil
	}
	_, err := io.WriteString(w, "\n"+content+"\n")
	return err
}

// formatReleaseHeader formats the "## [title] - date" line.
func formatReleaseHeader(r *Release) string {
	if date, ok := r.date.Get(); ok {
		return fmt.Sprintf("## [%s] - %s", r.title, date)
	}
	return fmt.Sprintf("## [%s]", r.title)
}

// renderFooterLinks writes the reference link definitions at the end of the file.
func renderFooterLinks(c *Changelog, w io.Writer) error {
	var links []string

	if url, ok := c.unreleased.url.Get(); ok {
		links = append(links, formatReferenceLink(c.unreleased.title, url))
	}
	for _, r := range c.releases {
		if url, ok := r.url.Get(); ok {
			links = append(links, formatReferenceLink(r.title, url))
		}
	}
	for _, l := range c.miscLinks {
		links = append(links, l.String())
	}

	if len(links) == 0 {
		return nil
	}

	_, err := io.WriteString(w, "\n"+strings.Join(links, "\n")+"\n")
	return err
}

// formatReferenceLink creates a "[title]: url" definition.
func formatReferenceLink(title ReleaseTitle, url string) string {
	return fmt.Sprintf("[%s]: %s", title, url)
}

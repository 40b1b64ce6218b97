package changelog

import (
	"fmt"

	"github.com/ariel-frischer/chog/internal/semver"
)

// NextVersion resolves n against the most recent release of c. Without any
// release, bumps start from 0.0.0. Bumping from a free-form release title
// fails with semver.ErrNotSemantic; an explicit version is accepted as is.
func (c *Changelog) NextVersion(n semver.Next) (semver.Version, error) {
	last, ok := c.LastRelease()
	if !ok {
		return n.Apply(nil)
	}

	prev, isVersion := last.Title().Version()
	if !isVersion {
		if n.Kind != semver.BumpCustom {
			return semver.Version{}, fmt.Errorf("bumping from %q: %w", last.TitleString(), semver.ErrNotSemantic)
		}
		return n.Apply(nil)
	}
	return n.Apply(&prev)
}

package changelog

import (
	"testing"

	"github.com/ariel-frischer/chog/internal/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangelog_NextVersion(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		next    string
		want    string
		wantErr error
	}{
		"patch from fixture": {
			input: "## [Unreleased]\n\n## [1.0.0] - 2021-06-20\n",
			next:  "patch",
			want:  "1.0.1",
		},
		"minor with prefixed title": {
			input: "## [Unreleased]\n\n## [v2.3.4]\n",
			next:  "minor",
			want:  "2.4.0",
		},
		"major from prerelease": {
			input: "## [Unreleased]\n\n## [3.0.0-rc.2]\n",
			next:  "major",
			want:  "3.0.0",
		},
		"first release": {
			input: "# Changelog\n\n## [Unreleased]\n- first\n",
			next:  "minor",
			want:  "0.1.0",
		},
		"custom from free-form title": {
			input: "## [Unreleased]\n\n## [Initial import]\n",
			next:  "0.1.0",
			want:  "0.1.0",
		},
		"bump from free-form title": {
			input:   "## [Unreleased]\n\n## [Initial import]\n",
			next:    "patch",
			wantErr: semver.ErrNotSemantic,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			next, err := semver.ParseNext(tt.next)
			require.NoError(t, err)

			got, err := New(tt.input).NextVersion(next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestChangelog_NextVersionNotIncreasing(t *testing.T) {
	t.Parallel()

	next, err := semver.ParseNext("1.0.0")
	require.NoError(t, err)

	_, err = New(readFixture(t, "full.md")).NextVersion(next)
	var notIncreasing *semver.NotIncreasingError
	require.ErrorAs(t, err, &notIncreasing)
	assert.Equal(t, "1.0.0", notIncreasing.Previous.String())
}

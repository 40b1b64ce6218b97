package changelog

import (
	"testing"

	"github.com/ariel-frischer/chog/internal/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromote(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		opts     PromoteOptions
		expected string
	}{
		"rewrites compare links": {
			input: `## [Unreleased]

- New thing

## [1.0.0] - 2024-01-01

- Initial

[Unreleased]: https://github.com/user/repo/compare/v1.0.0...HEAD
[1.0.0]: https://github.com/user/repo/releases/tag/v1.0.0
`,
			opts: PromoteOptions{Version: semver.New(1, 1, 0), Date: "2024-02-02", TagPrefix: "v"},
			expected: `## [Unreleased]

## [1.1.0] - 2024-02-02

- New thing

## [1.0.0] - 2024-01-01

- Initial

[Unreleased]: https://github.com/user/repo/compare/v1.1.0...HEAD
[1.1.0]: https://github.com/user/repo/compare/v1.0.0...v1.1.0
[1.0.0]: https://github.com/user/repo/releases/tag/v1.0.0
`,
		},
		"keeps ref style of previous tag": {
			input:    "## [Unreleased]\n- x\n\n[Unreleased]: https://git.example/r/compare/release-3...HEAD\n",
			opts:     PromoteOptions{Version: semver.New(4, 0, 0), TagPrefix: "release-"},
			expected: "## [Unreleased]\n\n## [4.0.0]\n- x\n\n[Unreleased]: https://git.example/r/compare/release-4.0.0...HEAD\n[4.0.0]: https://git.example/r/compare/release-3...release-4.0.0\n",
		},
		"unrecognized unreleased link is left alone": {
			input:    "## [Unreleased]\n- x\n\n[Unreleased]: https://example.com/changes\n",
			opts:     PromoteOptions{Version: semver.New(0, 2, 0), Date: "2024-01-01", RepoURL: "https://ignored.example"},
			expected: "## [Unreleased]\n\n## [0.2.0] - 2024-01-01\n- x\n\n[Unreleased]: https://example.com/changes\n",
		},
		"creates links from repo url before previous definition": {
			input:    "## [Unreleased]\n- x\n\n## [v0.1.0] - 2024-01-01\n- y\n\n[v0.1.0]: https://github.com/user/repo/releases/tag/v0.1.0\n",
			opts:     PromoteOptions{Version: semver.New(0, 2, 0), Date: "2024-03-03", RepoURL: "https://github.com/user/repo/", TagPrefix: "v"},
			expected: "## [Unreleased]\n\n## [0.2.0] - 2024-03-03\n- x\n\n## [v0.1.0] - 2024-01-01\n- y\n\n[Unreleased]: https://github.com/user/repo/compare/v0.2.0...HEAD\n[0.2.0]: https://github.com/user/repo/compare/v0.1.0...v0.2.0\n[v0.1.0]: https://github.com/user/repo/releases/tag/v0.1.0\n",
		},
		"creates first release links from repo url": {
			input:    "# Changelog\n\n## [Unreleased]\n\n- First\n",
			opts:     PromoteOptions{Version: semver.New(1, 0, 0), Date: "2024-01-01", RepoURL: "https://github.com/user/repo", TagPrefix: "v"},
			expected: "# Changelog\n\n## [Unreleased]\n\n## [1.0.0] - 2024-01-01\n\n- First\n\n[Unreleased]: https://github.com/user/repo/compare/v1.0.0...HEAD\n[1.0.0]: https://github.com/user/repo/releases/tag/v1.0.0\n",
		},
		"appends to existing link block": {
			input:    "## [Unreleased]\n- x\n\n## [Beta]\n\n[docs]: https://example.com/docs\n",
			opts:     PromoteOptions{Version: semver.New(1, 0, 0), RepoURL: "https://example.com/repo", TagPrefix: "v"},
			expected: "## [Unreleased]\n\n## [1.0.0]\n- x\n\n## [Beta]\n\n[docs]: https://example.com/docs\n[Unreleased]: https://example.com/repo/compare/v1.0.0...HEAD\n[1.0.0]: https://example.com/repo/releases/tag/v1.0.0\n",
		},
		"no links and no repo url": {
			input:    "## [Unreleased]\n- x\n## [0.1.0]\n",
			opts:     PromoteOptions{Version: semver.New(0, 1, 1), Date: "2024-01-01"},
			expected: "## [Unreleased]\n\n## [0.1.1] - 2024-01-01\n- x\n## [0.1.0]\n",
		},
		"marker on last line": {
			input:    "# Changelog\n\n## [Unreleased]",
			opts:     PromoteOptions{Version: semver.New(0, 0, 1)},
			expected: "# Changelog\n\n## [Unreleased]\n\n## [0.0.1]\n",
		},
		"crlf document": {
			input:    "## [Unreleased]\r\n- x\r\n\r\n[Unreleased]: https://h.example/compare/v1.0.0...HEAD\r\n",
			opts:     PromoteOptions{Version: semver.New(1, 0, 1), TagPrefix: "v"},
			expected: "## [Unreleased]\r\n\r\n## [1.0.1]\r\n- x\r\n\r\n[Unreleased]: https://h.example/compare/v1.0.1...HEAD\r\n[1.0.1]: https://h.example/compare/v1.0.0...v1.0.1\r\n",
		},
		"prerelease version": {
			input:    "## [Unreleased]\n- x\n",
			opts:     PromoteOptions{Version: semver.NewWithLabel(2, 0, 0, "rc.1"), Date: "2024-09-09"},
			expected: "## [Unreleased]\n\n## [2.0.0-rc.1] - 2024-09-09\n- x\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Promote(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPromote_NoUnreleased(t *testing.T) {
	t.Parallel()

	_, err := Promote("# Changelog\n\n## [1.0.0]\n", PromoteOptions{Version: semver.New(1, 0, 1)})
	assert.ErrorIs(t, err, ErrNoUnreleased)
}

func TestPromote_ParsesBack(t *testing.T) {
	t.Parallel()

	input := readFixture(t, "full.md")
	out, err := Promote(input, PromoteOptions{Version: semver.New(1, 1, 0), Date: "2024-10-01", TagPrefix: "v"})
	require.NoError(t, err)

	c := New(out)
	_, ok := c.Unreleased().Content()
	assert.False(t, ok, "unreleased section is empty after promotion")

	last, ok := c.LastRelease()
	require.True(t, ok)
	assert.Equal(t, "1.1.0", last.TitleString())
	url, _ := last.URL()
	assert.Equal(t, "https://github.com/user/repo/compare/v1.0.0...v1.1.0", url)

	body, ok := UnreleasedContent(out)
	require.True(t, ok)
	assert.Equal(t, "\n", body)
	assert.Contains(t, out, "## [1.1.0] - 2024-10-01\n"+fullUnreleasedBody+"## [1.0.0] - 2021-06-20")
}

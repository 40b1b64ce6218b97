package config

// DefaultDateFormat is the Go layout for ISO 8601 dates used by Keep a Changelog.
const DefaultDateFormat = "2006-01-02"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# chog configuration
# See 'chog config keys' for all options

path: CHANGELOG.md                    # Changelog file to read
output: ""                            # Write the result here instead of back to path
date_format: "2006-01-02"             # Go time layout for release dates
tag_prefix: v                         # Prefix of release tags in compare links
repo_url: ""                          # Repository web URL (empty = git origin remote)

quiet: false                          # Suppress informational output
force: false                          # Skip confirmation prompts
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"path":        "CHANGELOG.md",
		"output":      "",
		"date_format": DefaultDateFormat,
		// tag_prefix: "v" matches the vX.Y.Z tags used by most repositories.
		"tag_prefix": "v",
		"repo_url":   "",
		"quiet":      false,
		"force":      false,
	}
}

package config

import (
	"slices"
	"strings"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeString
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// accepts reports whether a decoded JSON or YAML value has type t.
func (t ConfigValueType) accepts(value interface{}) bool {
	switch value.(type) {
	case bool:
		return t == TypeBool
	case string:
		return t == TypeString
	default:
		return false
	}
}

// ConfigKeySchema describes a known configuration key.
type ConfigKeySchema struct {
	Path        string          // Key as written in config files
	Type        ConfigValueType // Expected value type
	Description string          // Human-readable description for help text
	Flag        string          // CLI flag that overrides the key, if any
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"path": {
		Path:        "path",
		Type:        TypeString,
		Description: "Changelog file to read",
		Flag:        "--path",
	},
	"output": {
		Path:        "output",
		Type:        TypeString,
		Description: "File to write the updated changelog to (empty = path)",
		Flag:        "--output",
	},
	"date_format": {
		Path:        "date_format",
		Type:        TypeString,
		Description: "Go time layout for release dates",
	},
	"tag_prefix": {
		Path:        "tag_prefix",
		Type:        TypeString,
		Description: "Prefix of release tags in compare links",
	},
	"repo_url": {
		Path:        "repo_url",
		Type:        TypeString,
		Description: "Repository web URL for release links (empty = git origin remote)",
		Flag:        "--repo-url",
	},
	"quiet": {
		Path:        "quiet",
		Type:        TypeBool,
		Description: "Suppress informational output",
		Flag:        "--quiet",
	},
	"force": {
		Path:        "force",
		Type:        TypeBool,
		Description: "Skip confirmation prompts",
		Flag:        "--force",
	},
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// SortedKeys returns the known key paths in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// EnvVar returns the environment variable that sets key.
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MigrationResult describes the outcome of a migration operation
type MigrationResult struct {
	SourcePath string
	TargetPath string
	Success    bool
	DryRun     bool
	Message    string
}

// MigrateJSONToYAML converts a legacy JSON config file to YAML.
//
// Every key must be a known key holding a value of its schema type. Keys are
// written in SortedKeys order, each annotated with its description. Dry-run
// mode only reports the planned action, and an existing YAML file is never
// overwritten.
func MigrateJSONToYAML(jsonPath, yamlPath string, dryRun bool) (*MigrationResult, error) {
	result := &MigrationResult{
		SourcePath: jsonPath,
		TargetPath: yamlPath,
		DryRun:     dryRun,
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			result.Message = fmt.Sprintf("No JSON config found at %s", jsonPath)
			return result, nil
		}
		return nil, fmt.Errorf("failed to read JSON config: %w", err)
	}

	var values map[string]interface{}
	if err := json.Unmarshal(jsonData, &values); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	doc, err := legacyValuesNode(values)
	if err != nil {
		return nil, fmt.Errorf("migrating %s: %w", jsonPath, err)
	}

	if _, err := os.Stat(yamlPath); err == nil {
		result.Message = fmt.Sprintf("YAML config already exists at %s (skipped)", yamlPath)
		return result, nil
	}

	if dryRun {
		result.Success = true
		result.Message = fmt.Sprintf("Would migrate %s → %s", jsonPath, yamlPath)
		return result, nil
	}

	yamlData, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to YAML: %w", err)
	}

	if dir := filepath.Dir(yamlPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	header := "# chog configuration\n# Migrated from JSON format\n\n"
	if err := os.WriteFile(yamlPath, []byte(header+string(yamlData)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write YAML config: %w", err)
	}

	result.Success = true
	result.Message = fmt.Sprintf("Migrated %s → %s", jsonPath, yamlPath)
	return result, nil
}

// legacyValuesNode checks values against KnownKeys and returns them as a
// YAML mapping ordered by key.
func legacyValuesNode(values map[string]interface{}) (*yaml.Node, error) {
	for key, value := range values {
		schema, err := GetKeySchema(key)
		if err != nil {
			return nil, err
		}
		if !schema.Type.accepts(value) {
			return nil, fmt.Errorf("key %s: expected %s, got %T", key, schema.Type, value)
		}
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range SortedKeys() {
		value, ok := values[key]
		if !ok {
			continue
		}
		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("key %s: %w", key, err)
		}
		valueNode.LineComment = KnownKeys[key].Description
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &valueNode)
	}
	return node, nil
}

// MigrateProjectConfig migrates .chog.json to .chog.yml in the current directory.
func MigrateProjectConfig(dryRun bool) (*MigrationResult, error) {
	return MigrateJSONToYAML(LegacyProjectConfigPath(), ProjectConfigPath(), dryRun)
}

// RemoveLegacyConfig renames a legacy JSON config to <path>.bak after a
// successful migration.
func RemoveLegacyConfig(jsonPath string, dryRun bool) error {
	if dryRun {
		return nil
	}

	if _, err := os.Stat(jsonPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Rename(jsonPath, jsonPath+".bak"); err != nil {
		return fmt.Errorf("failed to back up legacy config: %w", err)
	}

	return nil
}

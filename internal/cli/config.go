package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/ariel-frischer/chog/internal/config"
	clierrors "github.com/ariel-frischer/chog/internal/errors"
	"github.com/ariel-frischer/chog/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage chog configuration",
		Long: `Manage chog configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command line flags
  2. Environment variables (CHOG_*)
  3. Project config (.chog.yml, legacy .chog.json)
  4. User config (~/.config/chog/config.yml)
  5. Built-in defaults`,
		Example: `  # Show the effective configuration
  chog config show

  # List all configuration keys
  chog config keys

  # Create a commented .chog.yml
  chog config init`,
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigKeysCmd(), newConfigInitCmd(), newConfigMigrateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(configValues(cfg))
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// configValues returns cfg keyed by config key, in the order of config.SortedKeys.
func configValues(cfg *config.Configuration) *yaml.Node {
	values := map[string]interface{}{
		"path":        cfg.Path,
		"output":      cfg.Output,
		"date_format": cfg.DateFormat,
		"tag_prefix":  cfg.TagPrefix,
		"repo_url":    cfg.RepoURL,
		"quiet":       cfg.Quiet,
		"force":       cfg.Force,
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range config.SortedKeys() {
		var value yaml.Node
		if err := value.Encode(values[key]); err != nil {
			continue
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &value)
	}
	return node
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List configuration keys with their environment variables and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTYPE\tDEFAULT\tENV\tFLAG\tDESCRIPTION")
			defaults := config.GetDefaults()
			for _, key := range config.SortedKeys() {
				schema := config.KnownKeys[key]
				flag := schema.Flag
				if flag == "" {
					flag = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%q\t%s\t%s\t%s\n",
					key, schema.Type, fmt.Sprint(defaults[key]), config.EnvVar(key), flag, schema.Description)
			}
			return w.Flush()
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config file",
		Long: `Write a config file listing every option with its default value.

By default the project config (.chog.yml) is created; --user creates
~/.config/chog/config.yml instead. Existing files are kept unless --force.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
	cmd.Flags().Bool("user", false, "Create the user config instead of .chog.yml")
	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetBool("user")
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.ProjectConfigPath()
	}
	if user {
		var err error
		if path, err = config.UserConfigPath(); err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Configuration, "locating user config")
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return clierrors.NewConfigError(fmt.Sprintf("%s already exists", path), "Use --force to overwrite it")
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "checking "+path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierrors.WriteFailed(path, err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.WriteFailed(path, err)
	}

	output.PrintSuccess(cmd.ErrOrStderr(), "Created %s", path)
	return nil
}

func newConfigMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Convert a legacy .chog.json to .chog.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			result, err := config.MigrateProjectConfig(dryRun)
			if err != nil {
				return clierrors.Wrap(err, clierrors.Configuration)
			}
			if !result.Success {
				output.PrintNotice(cmd.ErrOrStderr(), "%s", result.Message)
				return nil
			}
			if err := config.RemoveLegacyConfig(result.SourcePath, dryRun); err != nil {
				return clierrors.Wrap(err, clierrors.Runtime)
			}
			output.PrintSuccess(cmd.ErrOrStderr(), "%s", result.Message)
			return nil
		},
	}
}

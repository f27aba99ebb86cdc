package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit claudehooks configuration",
		Long: `Show and edit claudehooks configuration.

Configuration is merged from defaults, the global file
(<user config dir>/claudehooks/config.json), the local file given by --config,
and CLAUDEHOOKS_* environment variables, in increasing priority.`,
		GroupID: shared.GroupConfiguration,
	}
	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigUnsetCmd(),
		newConfigKeysCmd(),
		newConfigCheckCmd(),
	)
	return cmd
}

// configTarget returns the file edited by set/unset.
func configTarget(cmd *cobra.Command) (string, error) {
	if global, _ := cmd.Flags().GetBool("global"); global {
		return config.GlobalConfigPath()
	}
	path, _ := cmd.Flags().GetString("config")
	return path, nil
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  claudehooks config show
  claudehooks config show --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != "json" && format != "yaml" {
				return shared.WithExitCode(shared.ExitInvalidArguments, fmt.Errorf("unknown format %q (want json or yaml)", format))
			}
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			configPath, _ := cmd.Flags().GetString("config")
			k, err := config.LoadKoanf(configPath)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("settings-dir"); dir != "" {
				_ = k.Set("settings_dir", dir)
			}

			var data []byte
			if format == "yaml" {
				data, err = yaml.Marshal(k.Raw())
			} else {
				data, err = json.MarshalIndent(k.Raw(), "", "  ")
				data = append(data, '\n')
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "o", "json", "Output format: json or yaml")
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one effective configuration value",
		Example: `  claudehooks config get kind
  claudehooks config get notifications.type`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.GetKeySchema(args[0]); err != nil {
				return shared.WithExitCode(shared.ExitInvalidArguments, err)
			}
			configPath, _ := cmd.Flags().GetString("config")
			k, err := config.LoadKoanf(configPath)
			if err != nil {
				return shared.WithExitCode(shared.ExitInvalidArguments, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(k.Get(args[0])))
			return nil
		},
	}
}

// formatValue prints lists comma separated, matching what set accepts.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ",")
	case []interface{}:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = fmt.Sprint(item)
		}
		return strings.Join(items, ",")
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a value to the local (or --global) config file",
		Example: `  claudehooks config set kind PreToolUse
  claudehooks config set matcher ExitPlanMode
  claudehooks config set identifiers "MyApp.app,myapp-notifier"
  claudehooks config set --global notifications.type both`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configTarget(cmd)
			if err != nil {
				return err
			}
			if err := config.SetConfigValue(path, args[0], args[1]); err != nil {
				return shared.WithExitCode(shared.ExitInvalidArguments, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
			return nil
		},
	}
	cmd.Flags().Bool("global", false, "Edit the global config file")
	return cmd
}

func newConfigUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a value from the local (or --global) config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configTarget(cmd)
			if err != nil {
				return err
			}
			if err := config.UnsetConfigValue(path, args[0]); err != nil {
				return shared.WithExitCode(shared.ExitInvalidArguments, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s in %s\n", args[0], path)
			return nil
		},
	}
	cmd.Flags().Bool("global", false, "Edit the global config file")
	return cmd
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List known configuration keys",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defaults := config.GetDefaults()
			for _, key := range config.SortedKeys() {
				schema := config.KnownKeys[key]
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", key, schema.Type, formatValue(defaults[key]), schema.Description)
			}
			tw.Flush()
		},
	}
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and report unknown keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			paths := []string{}
			if global, err := config.GlobalConfigPath(); err == nil {
				paths = append(paths, global)
			}
			if local, _ := cmd.Flags().GetString("config"); local != "" {
				paths = append(paths, local)
			}
			for _, path := range paths {
				unknown, err := config.UnknownKeys(path)
				if err != nil {
					return shared.WithExitCode(shared.ExitInvalidArguments, err)
				}
				for _, key := range unknown {
					fmt.Fprintf(out, "%s: unknown key %q\n", path, key)
				}
			}
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			fmt.Fprintln(out, "Configuration is valid")
			return nil
		},
	}
}

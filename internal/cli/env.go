package cli

import (
	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig reads configuration from --config and applies --settings-dir.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, shared.WithExitCode(shared.ExitInvalidArguments, err)
	}
	if dir, _ := cmd.Flags().GetString("settings-dir"); dir != "" {
		cfg.SettingsDir = dir
	}
	return cfg, nil
}

// loadManager builds the settings manager for the command's configuration.
func loadManager(cmd *cobra.Command) (*claude.Manager, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	m, err := cfg.Manager()
	if err != nil {
		return nil, shared.WithExitCode(shared.ExitInvalidArguments, err)
	}
	return m, nil
}

// describeIdentity renders the managed hook for messages, e.g. "PreToolUse hook (ExitPlanMode) for App".
func describeIdentity(m *claude.Manager) string {
	id := m.Identity()
	s := id.Kind().String() + " hook"
	if matcher, ok := id.Matcher(); ok {
		s += " (" + matcher + ")"
	}
	return s + " for " + id.AppName()
}

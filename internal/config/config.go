// Package config loads the claudehooks configuration: which application's hook is
// managed, where the Claude settings live and how the notifier is found.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/hook"
	"github.com/ariel-frischer/claudehooks/internal/notifier"
	"github.com/ariel-frischer/claudehooks/internal/notify"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override configuration.
const EnvPrefix = "CLAUDEHOOKS_"

// Configuration represents the claudehooks configuration
type Configuration struct {
	AppName     string   `koanf:"app_name" validate:"required"`
	Identifiers []string `koanf:"identifiers" validate:"min=1,dive,required"`
	Kind        string   `koanf:"kind" validate:"required,oneof=UserPromptSubmit PreToolUse"`
	Matcher     string   `koanf:"matcher" validate:"required_if=Kind PreToolUse"`

	// Timeout is written into PreToolUse hooks; 0 omits it.
	Timeout int `koanf:"timeout" validate:"min=0,max=600"`

	SettingsDir string `koanf:"settings_dir" validate:"required"`

	// NotifierPath skips discovery when set; otherwise NotifierName is looked up
	// next to the running binary.
	NotifierPath string `koanf:"notifier_path"`
	NotifierName string `koanf:"notifier_name" validate:"required_without=NotifierPath"`

	LockTimeout time.Duration `koanf:"lock_timeout"`

	// Notifications controls what claude-notifier shows for each hook event.
	Notifications notify.NotificationConfig `koanf:"notifications"`
}

// GlobalConfigPath returns the user-level config file path.
func GlobalConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "claudehooks", "config.json"), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k, err := LoadKoanf(localConfigPath)
	if err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	sourcePath := localConfigPath
	if sourcePath == "" {
		sourcePath = "config"
	}
	if err := ValidateConfigValues(&cfg, sourcePath); err != nil {
		return nil, err
	}

	cfg.SettingsDir = expandHomePath(cfg.SettingsDir)
	cfg.NotifierPath = expandHomePath(cfg.NotifierPath)
	cfg.Notifications.SoundFile = expandHomePath(cfg.Notifications.SoundFile)
	cfg.Notifications.LogFile = expandHomePath(cfg.Notifications.LogFile)

	return &cfg, nil
}

// LoadKoanf merges defaults, the global and local config files, and the
// environment into one koanf instance without validating the result.
func LoadKoanf(localConfigPath string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}
	return k, nil
}

// envTransform converts environment variables to config keys.
// Example: CLAUDEHOOKS_LOCK_TIMEOUT -> lock_timeout,
// CLAUDEHOOKS_NOTIFICATIONS_TYPE -> notifications.type. Identifiers are comma separated.
// Empty variables are skipped so they cannot blank out file values.
func envTransform(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "notifications_"); ok {
		return "notifications." + rest, value
	}
	if key == "identifiers" {
		return key, splitList(value)
	}
	return key, value
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// Identity builds the hook identity described by the configuration.
func (c *Configuration) Identity() (hook.Identity, error) {
	kind, err := hook.ParseKind(c.Kind)
	if err != nil {
		return hook.Identity{}, err
	}

	switch kind {
	case hook.PreToolUse:
		opt := hook.WithTimeout(c.Timeout)
		if c.Timeout == 0 {
			opt = hook.WithoutTimeout()
		}
		return hook.ForPreToolUse(c.AppName, c.Identifiers, c.Matcher, opt), nil
	default:
		return hook.ForUserPromptSubmit(c.AppName, c.Identifiers...), nil
	}
}

// Resolver returns how the notifier executable is located.
func (c *Configuration) Resolver() claude.NotifierResolver {
	if c.NotifierPath != "" {
		return notifier.Fixed(c.NotifierPath)
	}
	return notifier.NewResolver(c.NotifierName)
}

// Manager builds the settings manager for this configuration.
func (c *Configuration) Manager() (*claude.Manager, error) {
	id, err := c.Identity()
	if err != nil {
		return nil, err
	}
	return claude.NewManager(id,
		claude.WithDir(c.SettingsDir),
		claude.WithNotifierResolver(c.Resolver()),
		claude.WithLockTimeout(c.LockTimeout),
	), nil
}

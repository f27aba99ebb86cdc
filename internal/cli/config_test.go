package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigSetGetUnset(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "config", "set", "matcher", "ExitPlanMode")
	require.NoError(t, err)
	assert.Contains(t, out, "Set matcher in "+env.configPath)
	_, err = env.run(t, "", "config", "set", "kind", "PreToolUse")
	require.NoError(t, err)

	out, err = env.run(t, "", "config", "get", "kind")
	require.NoError(t, err)
	assert.Equal(t, "PreToolUse\n", out)

	out, err = env.run(t, "", "config", "get", "identifiers")
	require.NoError(t, err)
	assert.Equal(t, "claude-notifier\n", out)

	_, err = env.run(t, "", "config", "unset", "matcher")
	require.NoError(t, err)
	_, err = env.run(t, "", "status")
	require.Error(t, err, "PreToolUse without matcher is invalid")
	assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
}

func TestConfigSet_Global(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "config", "set", "--global", "notifications.type", "sound")
	require.NoError(t, err)

	globalPath, err := config.GlobalConfigPath()
	require.NoError(t, err)
	data, err := os.ReadFile(globalPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notifications": {"type": "sound"}}`, string(data))

	out, err := env.run(t, "", "config", "get", "notifications.type")
	require.NoError(t, err)
	assert.Equal(t, "sound\n", out)
}

func TestConfigSet_Invalid(t *testing.T) {
	env := newTestEnv(t)

	tests := map[string][]string{
		"unknown key":   {"config", "set", "colour", "red"},
		"bad value":     {"config", "set", "timeout", "ten"},
		"bad enum":      {"config", "set", "kind", "Stop"},
		"get unknown":   {"config", "get", "colour"},
		"unset unknown": {"config", "unset", "colour"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := env.run(t, "", args...)
			require.Error(t, err)
			assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
		})
	}
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "config", "show")
	require.NoError(t, err)

	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "TestApp", shown["app_name"])
	assert.Equal(t, env.settingsDir, shown["settings_dir"])
	assert.Equal(t, env.notifier, shown["notifier_path"])
	assert.Contains(t, shown, "notifications")
}

func TestConfigShow_YAML(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "config", "show", "--format", "yaml")
	require.NoError(t, err)

	var shown map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "TestApp", shown["app_name"])
	assert.Equal(t, env.settingsDir, shown["settings_dir"])
	assert.Contains(t, shown, "notifications")

	_, err = env.run(t, "", "config", "show", "--format", "toml")
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
}

func TestConfigKeys(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "config", "keys")
	require.NoError(t, err)
	for _, key := range config.SortedKeys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "UserPromptSubmit")
}

func TestConfigCheck(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, `{"app_name": "TestApp", "notifer_path": "/typo"}`)

	out, err := env.run(t, "", "config", "check")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Base(env.configPath)+`: unknown key "notifer_path"`)
	assert.Contains(t, out, "Configuration is valid")
}

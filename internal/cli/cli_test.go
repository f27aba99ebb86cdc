// Package cli tests the claudehooks commands end to end against a temporary
// Claude Code settings directory.
// Related: internal/cli/root.go, internal/claude/settings.go
// Tags: cli, install, remove, repair, sync, status
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/config"
	"github.com/ariel-frischer/claudehooks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv is an isolated home with a Claude settings dir, a notifier binary
// and a config file pointing at both.
// NO t.Parallel() in callers: t.Setenv modifies the process environment.
type testEnv struct {
	home        string
	settingsDir string
	notifier    string
	configPath  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := testutil.IsolateHome(t)

	env := &testEnv{
		home:        home,
		settingsDir: filepath.Join(home, ".claude"),
		notifier:    testutil.WriteExecutable(t, filepath.Join(home, "bin", "claude-notifier")),
		configPath:  filepath.Join(home, "claudehooks.json"),
	}
	require.NoError(t, os.MkdirAll(env.settingsDir, 0o755))
	env.writeConfig(t, fmt.Sprintf(`{"app_name": "TestApp", "identifiers": ["claude-notifier"], "notifier_path": %q}`, env.notifier))
	return env
}

func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	testutil.WriteFile(t, e.configPath, content)
}

func (e *testEnv) settingsPath() string {
	return filepath.Join(e.settingsDir, claude.SettingsFileName)
}

func (e *testEnv) writeSettings(t *testing.T, content string) {
	t.Helper()
	testutil.WriteFile(t, e.settingsPath(), content)
}

// commands returns every command of the UserPromptSubmit entries, flat and nested.
func (e *testEnv) commands(t *testing.T) []string {
	t.Helper()
	return testutil.HookCommands(testutil.ReadJSON(t, e.settingsPath()), "UserPromptSubmit")
}

// run executes claudehooks with args, feeding stdin to prompts.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath, "--settings-dir", e.settingsDir}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInstallCmd(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "install")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed UserPromptSubmit hook for TestApp")
	assert.Equal(t, []string{env.notifier}, env.commands(t))

	out, err = env.run(t, "", "install")
	require.NoError(t, err)
	assert.Contains(t, out, "already installed")
	assert.Equal(t, []string{env.notifier}, env.commands(t))
}

func TestInstallCmd_ClaudeMissing(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.RemoveAll(env.settingsDir))

	_, err := env.run(t, "", "install")
	require.Error(t, err)
	assert.Equal(t, shared.ExitMissingDependency, ExitCode(err))
	assert.NoDirExists(t, env.settingsDir)

	_, err = env.run(t, "", "install", "--force")
	require.NoError(t, err)
	assert.Equal(t, []string{env.notifier}, env.commands(t))
}

func TestInstallCmd_NotifierMissing(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.Remove(env.notifier))

	_, err := env.run(t, "", "install")
	require.Error(t, err)
	var notFound *claude.NotifierNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, shared.ExitMissingDependency, ExitCode(err))
	assert.NoFileExists(t, env.settingsPath())
}

func TestRemoveCmd(t *testing.T) {
	tests := map[string]struct {
		stdin       string
		args        []string
		wantOut     string
		wantRemains bool
	}{
		"confirmed":  {stdin: "y\n", wantOut: "Removed UserPromptSubmit hook for TestApp"},
		"declined":   {stdin: "n\n", wantOut: "Removal cancelled.", wantRemains: true},
		"yes flag":   {args: []string{"--yes"}, wantOut: "Removed"},
		"by alias":   {args: []string{"--yes"}, wantOut: "Removed"},
		"empty line": {stdin: "\n", wantOut: "Removal cancelled.", wantRemains: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			env.writeSettings(t, `{"model": "opus", "hooks": {"UserPromptSubmit": ["keep", {"hooks": [{"type": "command", "command": "`+env.notifier+`"}]}]}}`)

			use := "remove"
			if name == "by alias" {
				use = "uninstall"
			}
			out, err := env.run(t, tt.stdin, append([]string{use}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)

			if tt.wantRemains {
				assert.Equal(t, []string{env.notifier}, env.commands(t))
				return
			}
			assert.Empty(t, env.commands(t))
			data, err := os.ReadFile(env.settingsPath())
			require.NoError(t, err)
			assert.Contains(t, string(data), `"keep"`)
			assert.Contains(t, string(data), `"model": "opus"`)
		})
	}
}

func TestRemoveCmd_NotInstalled(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "remove")
	require.NoError(t, err)
	assert.Contains(t, out, "is not installed")
	assert.NoFileExists(t, env.settingsPath())
}

func TestRepairCmd(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t, `{"hooks": {"UserPromptSubmit": [
		{"hooks": [{"type": "command", "command": "/old/place/claude-notifier"}]},
		{"command": "/older/claude-notifier"}
	]}}`)

	out, err := env.run(t, "", "repair")
	require.NoError(t, err)
	assert.Contains(t, out, "Repaired")
	assert.Equal(t, []string{env.notifier}, env.commands(t))
}

func TestStatusCmd_Plain(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t, `{"hooks": {"UserPromptSubmit": [{"hooks": [{"type": "command", "command": "/old/claude-notifier"}]}]}}`)

	out, err := env.run(t, "", "status", "--plain")
	require.NoError(t, err)

	for _, want := range []string{
		"hook=UserPromptSubmit hook for TestApp",
		"claude_installed=true",
		"settings_exists=true",
		"notifier=" + env.notifier,
		"notifier_found=true",
		"valid=true",
		"configured=true",
		"needs_update=true",
		"entry[0]=/old/claude-notifier",
	} {
		assert.Contains(t, out, want+"\n")
	}
}

func TestStatusCmd_Pretty(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "install")
	require.NoError(t, err)

	out, err := env.run(t, "", "st")
	require.NoError(t, err)
	assert.Contains(t, out, "UserPromptSubmit hook for TestApp")
	assert.Contains(t, out, "✓ hook                      installed")
	assert.Contains(t, out, "(current)")
	assert.NotContains(t, out, "\x1b[", "no colors when output is not a terminal")
}

func TestStatusCmd_Corrupted(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t, `{not json`)

	out, err := env.run(t, "", "status", "--plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, claude.ErrSettingsCorrupted)
	assert.Equal(t, shared.ExitValidationFailed, ExitCode(err))
	assert.Contains(t, out, "valid=false")
}

func TestValidateCmd(t *testing.T) {
	tests := map[string]struct {
		settings string
		wantErr  error
	}{
		"missing file": {},
		"valid":        {settings: `{"hooks": {}}`},
		"corrupted":    {settings: `[1, 2]`, wantErr: claude.ErrSettingsCorrupted},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.settings != "" {
				env.writeSettings(t, tt.settings)
			}
			out, err := env.run(t, "", "validate")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "is valid")
		})
	}
}

func TestSyncCmd(t *testing.T) {
	tests := map[string]struct {
		settings     string
		stdin        string
		args         []string
		wantOut      string
		wantCommands func(env *testEnv) []string
	}{
		"installs when missing": {
			args:         []string{"--yes"},
			wantOut:      "[OK] [3/3] update hook: installed",
			wantCommands: func(env *testEnv) []string { return []string{env.notifier} },
		},
		"install declined": {
			settings:     `{"hooks": {}}`,
			stdin:        "n\n",
			wantOut:      "[WARN] [3/3] update hook: install declined",
			wantCommands: func(*testEnv) []string { return nil },
		},
		"no install flag": {
			settings:     `{"hooks": {}}`,
			args:         []string{"--no-install", "--yes"},
			wantOut:      "[WARN] [3/3] update hook: not installed",
			wantCommands: func(*testEnv) []string { return nil },
		},
		"repairs drift after prompt": {
			settings:     `{"hooks": {"UserPromptSubmit": [{"command": "/old/claude-notifier"}]}}`,
			stdin:        "yes\n",
			wantOut:      "[OK] [3/3] update hook: repaired",
			wantCommands: func(env *testEnv) []string { return []string{env.notifier} },
		},
		"up to date": {
			args:         []string{"--yes"},
			wantOut:      "[OK] [3/3] update hook: up to date",
			wantCommands: func(env *testEnv) []string { return []string{env.notifier} },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			switch {
			case name == "up to date":
				_, err := env.run(t, "", "install")
				require.NoError(t, err)
			case tt.settings != "":
				env.writeSettings(t, tt.settings)
			}

			out, err := env.run(t, tt.stdin, append([]string{"sync"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "[OK] [1/3] check Claude Code")
			assert.Contains(t, out, "[OK] [2/3] validate settings")
			assert.Contains(t, out, tt.wantOut)

			if _, statErr := os.Stat(env.settingsPath()); statErr == nil {
				assert.Equal(t, tt.wantCommands(env), env.commands(t))
			} else {
				assert.Nil(t, tt.wantCommands(env))
			}
		})
	}
}

func TestSyncCmd_StopsOnInvalidSettings(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t, `garbage`)

	out, err := env.run(t, "", "sync", "--yes")
	assert.ErrorIs(t, err, claude.ErrSettingsCorrupted)
	assert.Contains(t, out, "[FAIL] [2/3] validate settings")

	data, readErr := os.ReadFile(env.settingsPath())
	require.NoError(t, readErr)
	assert.Equal(t, "garbage", string(data))
}

func TestSyncCmd_ClaudeMissing(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.RemoveAll(env.settingsDir))

	out, err := env.run(t, "", "sync", "--yes")
	assert.Equal(t, shared.ExitMissingDependency, ExitCode(err))
	assert.Contains(t, out, "[FAIL] [1/3] check Claude Code")
}

func TestInvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, `{"kind": "Stop"}`)

	_, err := env.run(t, "", "status")
	require.Error(t, err)
	var invalid *config.ValidationError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
}

func TestPreToolUseFromEnv(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("CLAUDEHOOKS_KIND", "PreToolUse")
	t.Setenv("CLAUDEHOOKS_MATCHER", "ExitPlanMode")

	out, err := env.run(t, "", "install")
	require.NoError(t, err)
	assert.Contains(t, out, "PreToolUse hook (ExitPlanMode) for TestApp")

	data, err := os.ReadFile(env.settingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"matcher": "ExitPlanMode"`)
	assert.Contains(t, string(data), `"timeout": 10`)
}

func TestVersionCmd(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "claudehooks dev (development build)\n")
	assert.Contains(t, out, "platform: ")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":              {want: shared.ExitSuccess},
		"generic":          {err: errors.New("x"), want: shared.ExitValidationFailed},
		"corrupted":        {err: fmt.Errorf("%w: bad", claude.ErrSettingsCorrupted), want: shared.ExitValidationFailed},
		"unexpected shape": {err: claude.ErrUnexpectedStructure, want: shared.ExitValidationFailed},
		"lock":             {err: fmt.Errorf("%w: timeout", claude.ErrLockUnavailable), want: shared.ExitLockUnavailable},
		"notifier":         {err: &claude.NotifierNotFoundError{AppName: "A"}, want: shared.ExitMissingDependency},
		"claude missing":   {err: missingClaude("/x"), want: shared.ExitMissingDependency},
		"config":           {err: &config.ValidationError{FilePath: "c", Message: "m"}, want: shared.ExitInvalidArguments},
		"explicit code":    {err: shared.WithExitCode(shared.ExitInvalidArguments, errors.New("x")), want: shared.ExitInvalidArguments},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestDoctorCmd(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "install")
	require.NoError(t, err)

	out, err := env.run(t, "", "doctor")
	assert.Contains(t, out, "✓ Claude settings dir: "+env.settingsDir)
	assert.Contains(t, out, "✓ settings.json: "+env.settingsPath())
	assert.Contains(t, out, "✓ Notifier: "+env.notifier)
	assert.Contains(t, out, "✓ Hook: installed")
	if err != nil {
		// Claude CLI or notification tools are absent on this machine.
		assert.Equal(t, shared.ExitValidationFailed, ExitCode(err))
	}
}

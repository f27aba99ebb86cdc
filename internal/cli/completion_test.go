package cli

import (
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/completion"
	"github.com/ariel-frischer/claudehooks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionScripts(t *testing.T) {
	env := newTestEnv(t)

	for _, shell := range completion.SupportedShells() {
		out, err := env.run(t, "", "completion", string(shell))
		require.NoError(t, err, shell)
		assert.Contains(t, out, "claudehooks", shell)
	}
}

func TestCompletionInstallAndUninstall(t *testing.T) {
	env := newTestEnv(t)
	rc := filepath.Join(env.home, ".zshrc")
	testutil.WriteFile(t, rc, "setopt autocd\n")

	out, err := env.run(t, "", "completion", "install", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "Completion installed in "+rc)
	assert.Contains(t, out, "Backup created at")
	assert.Contains(t, testutil.ReadFile(t, rc), completion.StartMarker)

	out, err = env.run(t, "", "completion", "install", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "already installed")

	out, err = env.run(t, "", "completion", "uninstall", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "Completion removed from "+rc)
	assert.Equal(t, "setopt autocd\n", testutil.ReadFile(t, rc))
}

func TestCompletionInstall_Fish(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "completion", "install", "fish")
	require.NoError(t, err)

	script := testutil.ReadFile(t, filepath.Join(env.home, ".config", "fish", "completions", "claudehooks.fish"))
	assert.Contains(t, script, "complete -c claudehooks")
}

func TestCompletionInstall_DetectsShell(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("SHELL", "/usr/local/bin/bash")

	out, err := env.run(t, "", "completion", "install", "--manual")
	require.NoError(t, err)
	assert.Contains(t, out, "Detected shell: bash")
	assert.Contains(t, out, "~/.bashrc")
	assert.False(t, testutil.FileExists(filepath.Join(env.home, ".bashrc")), "--manual must not modify files")
}

func TestCompletionInstall_UnknownShell(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "completion", "install", "tcsh")
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, ExitCode(err))
}

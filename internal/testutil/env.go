package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ciEnvVars lists the variables that mark a CI run. Notifications are
// suppressed while any of them is set.
var ciEnvVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_URL",
	"BUILDKITE",
	"TF_BUILD",
	"CODEBUILD_BUILD_ID",
}

// ClearCI blanks the CI marker variables for the duration of the test.
// Callers must not use t.Parallel().
func ClearCI(t *testing.T) {
	t.Helper()
	for _, key := range ciEnvVars {
		t.Setenv(key, "")
	}
}

// ClearConfigEnv blanks every CLAUDEHOOKS_ variable inherited from the
// developer's shell so configuration comes only from the files under test.
func ClearConfigEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CLAUDEHOOKS_") {
			t.Setenv(key, "")
		}
	}
}

// IsolateHome points the home and user config directories at a fresh temp
// dir and returns it. The real ~/.claude is never touched.
// Callers must not use t.Parallel().
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))
	ClearConfigEnv(t)
	return home
}

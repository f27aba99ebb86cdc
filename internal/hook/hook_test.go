package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind Kind
		want string
	}{
		"user prompt submit": {kind: UserPromptSubmit, want: "UserPromptSubmit"},
		"pre tool use":       {kind: PreToolUse, want: "PreToolUse"},
		"unknown":            {kind: Kind(42), want: "Unknown"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := ParseKind("PreToolUse")
	require.NoError(t, err)
	assert.Equal(t, PreToolUse, k)

	k, err = ParseKind("UserPromptSubmit")
	require.NoError(t, err)
	assert.Equal(t, UserPromptSubmit, k)

	_, err = ParseKind("userpromptsubmit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hook kind")
}

func TestForUserPromptSubmit(t *testing.T) {
	t.Parallel()

	id := ForUserPromptSubmit("TestApp", "TestApp.app", "testapp-notifier")

	assert.Equal(t, "TestApp", id.AppName())
	assert.Equal(t, UserPromptSubmit, id.Kind())
	assert.Equal(t, []string{"TestApp.app", "testapp-notifier"}, id.Identifiers())

	_, ok := id.Matcher()
	assert.False(t, ok)
	_, ok = id.Timeout()
	assert.False(t, ok)
}

func TestForPreToolUse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts        []PreToolUseOption
		wantTimeout int
		wantHas     bool
	}{
		"default timeout": {
			wantTimeout: DefaultTimeoutSeconds,
			wantHas:     true,
		},
		"custom timeout": {
			opts:        []PreToolUseOption{WithTimeout(30)},
			wantTimeout: 30,
			wantHas:     true,
		},
		"no timeout": {
			opts:    []PreToolUseOption{WithoutTimeout()},
			wantHas: false,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			id := ForPreToolUse("PlanApp", []string{"PlanApp"}, "ExitPlanMode", tt.opts...)

			assert.Equal(t, PreToolUse, id.Kind())
			matcher, ok := id.Matcher()
			require.True(t, ok)
			assert.Equal(t, "ExitPlanMode", matcher)

			timeout, has := id.Timeout()
			assert.Equal(t, tt.wantHas, has)
			assert.Equal(t, tt.wantTimeout, timeout)
		})
	}
}

func TestIdentity_IdentifiersAreCopied(t *testing.T) {
	t.Parallel()

	ids := []string{"one", "two"}
	id := ForPreToolUse("App", ids, "Bash")
	ids[0] = "mutated"

	got := id.Identifiers()
	assert.Equal(t, []string{"one", "two"}, got)

	got[1] = "mutated"
	assert.Equal(t, []string{"one", "two"}, id.Identifiers())
}

// Package hook describes how one application registers itself in the Claude Code
// settings file: which lifecycle point it hooks and how its own entries are recognized.
package hook

import "fmt"

// Kind is the lifecycle point a hook is registered for. Its string form is the
// key used under "hooks" in settings.json and must not change.
type Kind int

const (
	// UserPromptSubmit runs when the user submits a prompt.
	UserPromptSubmit Kind = iota
	// PreToolUse runs before a matching tool call.
	PreToolUse
)

// String returns the settings.json key for the kind.
func (k Kind) String() string {
	switch k {
	case UserPromptSubmit:
		return "UserPromptSubmit"
	case PreToolUse:
		return "PreToolUse"
	default:
		return "Unknown"
	}
}

// ParseKind converts a settings.json key into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "UserPromptSubmit":
		return UserPromptSubmit, nil
	case "PreToolUse":
		return PreToolUse, nil
	default:
		return 0, fmt.Errorf("unknown hook kind %q (want UserPromptSubmit or PreToolUse)", s)
	}
}

// DefaultTimeoutSeconds is the timeout written for PreToolUse hooks unless overridden.
const DefaultTimeoutSeconds = 10

// PreToolUseDetails carries the fields that only exist for PreToolUse hooks.
type PreToolUseDetails struct {
	Matcher        string
	TimeoutSeconds int
	HasTimeout     bool
}

// Identity is one application's hook registration. It is built once through
// ForUserPromptSubmit or ForPreToolUse and never mutated afterwards.
type Identity struct {
	appName     string
	identifiers []string
	kind        Kind
	preToolUse  *PreToolUseDetails
}

// ForUserPromptSubmit returns an identity for a UserPromptSubmit hook.
// identifiers are matched case-insensitively against entry commands.
func ForUserPromptSubmit(appName string, identifiers ...string) Identity {
	return Identity{
		appName:     appName,
		identifiers: cloneStrings(identifiers),
		kind:        UserPromptSubmit,
	}
}

// PreToolUseOption adjusts a PreToolUse identity at construction time.
type PreToolUseOption func(*PreToolUseDetails)

// WithTimeout sets the timeout written into the hook command object.
func WithTimeout(seconds int) PreToolUseOption {
	return func(d *PreToolUseDetails) {
		d.TimeoutSeconds = seconds
		d.HasTimeout = true
	}
}

// WithoutTimeout omits the timeout from the hook command object.
func WithoutTimeout() PreToolUseOption {
	return func(d *PreToolUseDetails) {
		d.TimeoutSeconds = 0
		d.HasTimeout = false
	}
}

// ForPreToolUse returns an identity for a PreToolUse hook on the tool named by matcher.
// The timeout defaults to DefaultTimeoutSeconds.
func ForPreToolUse(appName string, identifiers []string, matcher string, opts ...PreToolUseOption) Identity {
	details := &PreToolUseDetails{
		Matcher:        matcher,
		TimeoutSeconds: DefaultTimeoutSeconds,
		HasTimeout:     true,
	}
	for _, opt := range opts {
		opt(details)
	}
	return Identity{
		appName:     appName,
		identifiers: cloneStrings(identifiers),
		kind:        PreToolUse,
		preToolUse:  details,
	}
}

// AppName is the display name used in error messages.
func (id Identity) AppName() string { return id.appName }

// Kind returns the lifecycle point.
func (id Identity) Kind() Kind { return id.kind }

// Identifiers returns a copy of the substrings that recognize this app's commands.
func (id Identity) Identifiers() []string { return cloneStrings(id.identifiers) }

// Matcher returns the PreToolUse matcher. ok is false for other kinds.
func (id Identity) Matcher() (matcher string, ok bool) {
	if id.preToolUse == nil {
		return "", false
	}
	return id.preToolUse.Matcher, true
}

// Timeout returns the hook timeout in seconds. ok is false when none is set.
func (id Identity) Timeout() (seconds int, ok bool) {
	if id.preToolUse == nil || !id.preToolUse.HasTimeout {
		return 0, false
	}
	return id.preToolUse.TimeoutSeconds, true
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

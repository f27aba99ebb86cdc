package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Hook event names as sent in hook_event_name.
const (
	EventUserPromptSubmit = "UserPromptSubmit"
	EventPreToolUse       = "PreToolUse"
)

// Payload is the JSON document Claude Code writes to a hook command's stdin.
// Fields not relevant to the event are empty.
type Payload struct {
	SessionID      string          `json:"session_id"`
	TranscriptPath string          `json:"transcript_path"`
	Cwd            string          `json:"cwd"`
	PermissionMode string          `json:"permission_mode,omitempty"`
	HookEventName  string          `json:"hook_event_name"`
	Prompt         string          `json:"prompt,omitempty"`
	ToolName       string          `json:"tool_name,omitempty"`
	ToolInput      json.RawMessage `json:"tool_input,omitempty"`
}

// ParsePayload reads one hook payload from r.
func ParsePayload(r io.Reader) (Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("decoding hook payload: %w", err)
	}
	if p.HookEventName == "" {
		return Payload{}, fmt.Errorf("hook payload has no hook_event_name")
	}
	return p, nil
}

// Project returns the base name of the working directory, or "".
func (p Payload) Project() string {
	if p.Cwd == "" {
		return ""
	}
	return filepath.Base(p.Cwd)
}

// truncate shortens s to at most max runes, collapsing whitespace.
// max <= 0 disables truncation.
func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

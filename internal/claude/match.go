package claude

import (
	"strings"

	"github.com/ariel-frischer/claudehooks/internal/hook"
)

// kindEntries returns the hooks.<kind> array, or false when either level is
// missing or has the wrong JSON type.
func kindEntries(doc document, kind hook.Kind) ([]any, bool) {
	hooks, ok := objectField(doc, "hooks")
	if !ok {
		return nil, false
	}
	return arrayField(hooks, kind.String())
}

// matchingIndices returns the ascending positions of every entry owned by id.
// Each position appears at most once, whichever command shape matched.
func matchingIndices(id hook.Identity, entries []any) []int {
	var indices []int
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if entryMatches(id, entry) {
			indices = append(indices, i)
		}
	}
	return indices
}

// firstMatchingIndex returns the lowest matching position, or -1.
func firstMatchingIndex(id hook.Identity, entries []any) int {
	indices := matchingIndices(id, entries)
	if len(indices) == 0 {
		return -1
	}
	return indices[0]
}

func entryMatches(id hook.Identity, entry map[string]any) bool {
	if want, ok := id.Matcher(); ok {
		got, ok := stringField(entry, "matcher")
		if !ok || got != want {
			return false
		}
	}

	for _, command := range entryCommands(entry) {
		if commandMatches(id, command) {
			return true
		}
	}
	return false
}

// entryCommands collects the flat "command" field and every nested
// hooks[].command field of an entry.
func entryCommands(entry map[string]any) []string {
	var commands []string
	if command, ok := stringField(entry, "command"); ok {
		commands = append(commands, command)
	}

	inner, ok := arrayField(entry, "hooks")
	if !ok {
		return commands
	}
	for _, raw := range inner {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if command, ok := stringField(obj, "command"); ok {
			commands = append(commands, command)
		}
	}
	return commands
}

func commandMatches(id hook.Identity, command string) bool {
	lower := strings.ToLower(command)
	for _, ident := range id.Identifiers() {
		if ident == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(ident)) {
			return true
		}
	}
	return false
}

// hasCommand reports whether any command of entry equals path exactly.
func hasCommand(entry any, path string) bool {
	obj, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	for _, command := range entryCommands(obj) {
		if command == path {
			return true
		}
	}
	return false
}

// newEntry builds the nested-shape entry written for id.
func newEntry(id hook.Identity, notifierPath string) map[string]any {
	command := map[string]any{
		"command": notifierPath,
		"type":    "command",
	}
	if timeout, ok := id.Timeout(); ok {
		command["timeout"] = timeout
	}

	entry := map[string]any{
		"hooks": []any{command},
	}
	if matcher, ok := id.Matcher(); ok {
		entry["matcher"] = matcher
	}
	return entry
}

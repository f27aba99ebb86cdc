// Package testutil provides fixtures shared by the claudehooks tests: isolated
// home directories, fake executables and readers for Claude Code settings files.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// WriteExecutable creates a shell script at path that exits 0. Returns path.
func WriteExecutable(t *testing.T, path string) string {
	t.Helper()

	WriteFile(t, path, "#!/bin/sh\nexit 0\n")
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("failed to chmod %s: %v", path, err)
	}
	return path
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// ReadJSON decodes the JSON object stored at path.
func ReadJSON(t *testing.T, path string) map[string]any {
	t.Helper()

	var doc map[string]any
	if err := json.Unmarshal([]byte(ReadFile(t, path)), &doc); err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return doc
}

// HookCommands returns every command registered under hooks.<event> in a
// settings document, from both flat entries and matcher groups.
func HookCommands(doc map[string]any, event string) []string {
	hooks, _ := doc["hooks"].(map[string]any)
	entries, _ := hooks[event].([]any)

	var out []string
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if c, ok := obj["command"].(string); ok {
			out = append(out, c)
		}
		inner, _ := obj["hooks"].([]any)
		for _, h := range inner {
			if hm, ok := h.(map[string]any); ok {
				if c, ok := hm["command"].(string); ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

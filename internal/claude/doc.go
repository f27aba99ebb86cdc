// Package claude manages hook registrations in the Claude Code user settings file
// (~/.claude/settings.json) on behalf of several independent applications.
//
// The package supports:
//   - Detecting whether an application's hook entry is present
//   - Detecting drift (duplicate entries, stale notifier paths)
//   - Installing, removing and repairing entries while preserving unrelated settings
//   - Serializing read-modify-write cycles across processes with an advisory file lock
//   - Atomic file writes so readers never observe a partial file
//
// The settings document is handled as an untyped JSON tree; keys the package does not
// interpret are written back unchanged.
package claude

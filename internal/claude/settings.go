package claude

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/claudehooks/internal/hook"
	"github.com/ariel-frischer/claudehooks/internal/notifier"
)

// SettingsFileName is the name of the Claude user settings file.
const SettingsFileName = "settings.json"

// SettingsDir is the directory, relative to the home directory, holding Claude settings.
const SettingsDir = ".claude"

// DefaultDir returns ~/.claude, or a relative .claude when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return SettingsDir
	}
	return filepath.Join(home, SettingsDir)
}

// NotifierResolver returns the absolute path of the executable to register as the
// hook command, or false when it cannot be located.
type NotifierResolver func() (string, bool)

// Manager reads and mutates one application's hook entry in the settings file.
// Its configuration is fixed at construction, so a Manager is safe for
// concurrent use; mutating calls serialize on a cross-process file lock.
type Manager struct {
	identity     hook.Identity
	dir          string
	settingsPath string
	lockPath     string
	resolve      NotifierResolver
	lockTimeout  time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir overrides the settings directory (default ~/.claude).
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithNotifierResolver overrides how the notifier executable is located.
func WithNotifierResolver(resolve NotifierResolver) Option {
	return func(m *Manager) {
		m.resolve = resolve
	}
}

// WithLockTimeout bounds how long mutating operations wait for the settings lock.
// Zero or negative keeps DefaultLockTimeout, so a stuck holder always ends in
// ErrLockUnavailable.
func WithLockTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.lockTimeout = d
		}
	}
}

// NewManager creates a Manager for identity.
func NewManager(identity hook.Identity, opts ...Option) *Manager {
	m := &Manager{
		identity:    identity,
		dir:         DefaultDir(),
		resolve:     notifier.Resolve,
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.settingsPath = filepath.Join(m.dir, SettingsFileName)
	m.lockPath = lockPathFor(m.settingsPath)
	return m
}

// Identity returns the hook identity the Manager operates on.
func (m *Manager) Identity() hook.Identity { return m.identity }

// Dir returns the settings directory.
func (m *Manager) Dir() string { return m.dir }

// FilePath returns the path to the settings file.
func (m *Manager) FilePath() string { return m.settingsPath }

// InstalledPrerequisite reports whether the settings directory exists, which is
// taken to mean Claude Code is installed for this user.
func (m *Manager) InstalledPrerequisite() bool {
	info, err := os.Stat(m.dir)
	return err == nil && info.IsDir()
}

// Validate returns nil when the settings file is absent or holds a JSON object.
// Otherwise it returns an error wrapping ErrSettingsCorrupted or ErrSettingsUnreadable.
func (m *Manager) Validate() error {
	_, _, err := readDocument(m.settingsPath)
	return err
}

// IsConfigured reports whether an entry belonging to this identity is present.
// Read and parse failures count as not configured.
func (m *Manager) IsConfigured() bool {
	doc, exists, err := readDocument(m.settingsPath)
	if err != nil || !exists {
		return false
	}
	entries, ok := kindEntries(doc, m.identity.Kind())
	if !ok {
		return false
	}
	return firstMatchingIndex(m.identity, entries) >= 0
}

// NeedsUpdate reports whether the identity's entries have drifted: more than one
// matching entry, or matching entries none of which points at the current notifier.
// It returns false when nothing actionable is known, including on read failures.
func (m *Manager) NeedsUpdate() bool {
	path, ok := m.resolveNotifier()
	if !ok {
		return false
	}
	doc, exists, err := readDocument(m.settingsPath)
	if err != nil || !exists {
		return false
	}
	entries, ok := kindEntries(doc, m.identity.Kind())
	if !ok {
		return false
	}
	return drifted(entries, matchingIndices(m.identity, entries), path)
}

func drifted(entries []any, indices []int, notifierPath string) bool {
	switch {
	case len(indices) == 0:
		return false
	case len(indices) > 1:
		return true
	}
	for _, i := range indices {
		if hasCommand(entries[i], notifierPath) {
			return false
		}
	}
	return true
}

// Install appends this identity's entry unless one is already present.
// The presence check runs under the settings lock.
func (m *Manager) Install(ctx context.Context) error {
	notifierPath, ok := m.resolveNotifier()
	if !ok {
		return &NotifierNotFoundError{AppName: m.identity.AppName()}
	}

	return m.withLock(ctx, func() error {
		doc, err := m.readOrEmpty()
		if err != nil {
			return err
		}

		if entries, ok := kindEntries(doc, m.identity.Kind()); ok {
			if firstMatchingIndex(m.identity, entries) >= 0 {
				return nil
			}
		}

		hooks, entries, err := m.hookContainers(doc)
		if err != nil {
			return err
		}

		hooks[m.identity.Kind().String()] = append(entries, newEntry(m.identity, notifierPath))
		return writeDocument(m.settingsPath, doc)
	})
}

// RemoveHook deletes every entry belonging to this identity. Other elements,
// including non-object ones, keep their relative order. A missing file or a
// missing or mistyped hooks array is not an error.
func (m *Manager) RemoveHook(ctx context.Context) error {
	if _, err := os.Stat(m.settingsPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return m.withLock(ctx, func() error {
		doc, exists, err := readDocument(m.settingsPath)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}

		entries, ok := kindEntries(doc, m.identity.Kind())
		if !ok {
			return nil
		}
		indices := matchingIndices(m.identity, entries)
		if len(indices) == 0 {
			return nil
		}

		hooks, _ := objectField(doc, "hooks")
		hooks[m.identity.Kind().String()] = without(entries, indices)
		return writeDocument(m.settingsPath, doc)
	})
}

// CleanupAndInstallHook replaces every entry belonging to this identity with one
// fresh entry for the current notifier. It collapses duplicates and fixes stale
// paths in one locked step.
func (m *Manager) CleanupAndInstallHook(ctx context.Context) error {
	notifierPath, ok := m.resolveNotifier()
	if !ok {
		return &NotifierNotFoundError{AppName: m.identity.AppName()}
	}

	return m.withLock(ctx, func() error {
		doc, err := m.readOrEmpty()
		if err != nil {
			return err
		}

		hooks, entries, err := m.hookContainers(doc)
		if err != nil {
			return err
		}

		kept := without(entries, matchingIndices(m.identity, entries))
		hooks[m.identity.Kind().String()] = append(kept, newEntry(m.identity, notifierPath))
		return writeDocument(m.settingsPath, doc)
	})
}

// withLock runs fn while holding the cross-process settings lock. The lock is
// released on every return path.
func (m *Manager) withLock(ctx context.Context, fn func() error) (err error) {
	lock, err := acquireLock(ctx, m.lockPath, m.lockTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := lock.release(); releaseErr != nil && err == nil {
			err = fmt.Errorf("releasing settings lock: %w", releaseErr)
		}
	}()
	return fn()
}

func (m *Manager) resolveNotifier() (string, bool) {
	if m.resolve == nil {
		return "", false
	}
	path, ok := m.resolve()
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// readOrEmpty reads the settings document, treating a missing file as {}.
func (m *Manager) readOrEmpty() (document, error) {
	doc, exists, err := readDocument(m.settingsPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return document{}, nil
	}
	return doc, nil
}

// hookContainers returns the hooks object and this kind's array, creating
// either when absent. A present key of the wrong type is ErrUnexpectedStructure.
func (m *Manager) hookContainers(doc document) (map[string]any, []any, error) {
	var hooks map[string]any
	raw, present := doc["hooks"]
	if !present {
		hooks = make(map[string]any)
		doc["hooks"] = hooks
	} else {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q is %s, want an object", ErrUnexpectedStructure, "hooks", jsonTypeName(raw))
		}
		hooks = obj
	}

	key := m.identity.Kind().String()
	raw, present = hooks[key]
	if !present {
		return hooks, []any{}, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q is %s, want an array", ErrUnexpectedStructure, "hooks."+key, jsonTypeName(raw))
	}
	return hooks, entries, nil
}

// without returns entries minus the positions in indices (ascending).
func without(entries []any, indices []int) []any {
	kept := make([]any, 0, len(entries))
	next := 0
	for i, entry := range entries {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 150 * time.Millisecond

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report hook state whenever settings.json changes",
		Long: `Watch the Claude Code settings directory and print the hook state each time
settings.json changes, for example when Claude Code or another application
rewrites it. With --repair, drifted entries are repaired automatically.

The directory is watched rather than the file because settings.json is
replaced atomically on every write. Stop with Ctrl-C.`,
		Example: `  claudehooks watch
  claudehooks watch --repair`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupDiagnostics,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repair, _ := cmd.Flags().GetBool("repair")
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if !m.InstalledPrerequisite() {
				return missingClaude(m.Dir())
			}
			w := &settingsWatcher{manager: m, out: cmd.OutOrStdout(), repair: repair, debounce: watchDebounce}
			return w.run(cmd.Context())
		},
	}
	cmd.Flags().Bool("repair", false, "Repair stale or duplicate entries when they appear")
	return cmd
}

// settingsWatcher reports hook state after each burst of changes to settings.json.
type settingsWatcher struct {
	manager  *claude.Manager
	out      io.Writer
	repair   bool
	debounce time.Duration
}

func (w *settingsWatcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.manager.Dir()); err != nil {
		return fmt.Errorf("watching %s: %w", w.manager.Dir(), err)
	}
	fmt.Fprintf(w.out, "Watching %s\n", w.manager.FilePath())
	w.check(ctx)

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != claude.SettingsFileName {
				continue
			}
			slog.Debug("settings event", "op", ev.Op.String(), "path", ev.Name)
			settle = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-settle:
			settle = nil
			w.check(ctx)
		}
	}
}

// check prints the current state and repairs drift when enabled.
func (w *settingsWatcher) check(ctx context.Context) {
	state := w.state()
	fmt.Fprintf(w.out, "%s %s\n", time.Now().Format(time.TimeOnly), state)

	if !w.repair || state != stateNeedsUpdate {
		return
	}
	if err := w.manager.CleanupAndInstallHook(ctx); err != nil {
		fmt.Fprintf(w.out, "%s repair failed: %v\n", time.Now().Format(time.TimeOnly), err)
		return
	}
	fmt.Fprintf(w.out, "%s repaired\n", time.Now().Format(time.TimeOnly))
}

const (
	stateNotInstalled = "not installed"
	stateNeedsUpdate  = "needs update"
	stateCurrent      = "installed"
)

func (w *settingsWatcher) state() string {
	if err := w.manager.Validate(); err != nil {
		return "invalid: " + err.Error()
	}
	switch {
	case !w.manager.IsConfigured():
		return stateNotInstalled
	case w.manager.NeedsUpdate():
		return stateNeedsUpdate
	default:
		return stateCurrent
	}
}

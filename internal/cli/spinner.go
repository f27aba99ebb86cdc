package cli

import (
	"os"

	"github.com/ariel-frischer/claudehooks/internal/progress"
	"github.com/spf13/cobra"
)

// newDisplay returns a progress display for cmd. Capabilities are only
// detected when output goes to the real stdout.
func newDisplay(cmd *cobra.Command) *progress.Display {
	var caps progress.TerminalCapabilities
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		caps = progress.DetectTerminalCapabilities(f)
	}
	return progress.NewDisplay(caps, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runWithSpinner shows a spinner on terminals while fn waits on the settings lock.
// Non-terminal output gets no progress lines.
func runWithSpinner(cmd *cobra.Command, name string, fn func() error) error {
	d := newDisplay(cmd)
	if d.IsTTY() {
		_ = d.Start(progress.Step{Name: name, Number: 1, Total: 1})
		defer d.Stop()
	}
	return fn()
}

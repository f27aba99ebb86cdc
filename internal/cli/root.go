// Package cli provides the Cobra-based claudehooks command. It registers,
// inspects, repairs and removes the notifier hook in Claude Code's
// settings.json, and can watch the file for changes made by other tools.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/spf13/cobra"
)

// DefaultConfigPath is the project-local config file read when --config is not given.
const DefaultConfigPath = ".claudehooks.json"

// NewRootCmd builds the claudehooks command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claudehooks",
		Short: "Manage Claude Code notifier hooks",
		Long: `claudehooks manages the notifier hook entry in Claude Code's settings.json.

It installs the hook for UserPromptSubmit or PreToolUse, detects entries that
point at an old notifier path or are duplicated, repairs them, and removes them,
while leaving every other setting untouched.`,
		Example: `  # Show whether the hook is installed and current
  claudehooks status

  # Check, then install or repair as needed
  claudehooks sync

  # Register a PreToolUse hook for plan approvals
  CLAUDEHOOKS_KIND=PreToolUse CLAUDEHOOKS_MATCHER=ExitPlanMode claudehooks install

  # Remove the hook without prompting
  claudehooks remove --yes`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupHooks, Title: "Hook Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupDiagnostics, Title: "Diagnostics:"})
	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupConfiguration, Title: "Configuration:"})
	rootCmd.SetHelpCommandGroupID(shared.GroupConfiguration)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfigPath, "Path to config file")
	rootCmd.PersistentFlags().String("settings-dir", "", "Claude Code settings directory (default ~/.claude)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInstallCmd(),
		newRemoveCmd(),
		newRepairCmd(),
		newSyncCmd(),
		newStatusCmd(),
		newDoctorCmd(),
		newValidateCmd(),
		newWatchCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	rootCmd.AddCommand(newCompletionCmd(rootCmd))
	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// setupLogging installs a stderr text logger; --debug lowers the level to Debug.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

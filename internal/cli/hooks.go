package cli

import (
	"fmt"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the notifier hook in settings.json",
		Long: `Register the notifier hook in Claude Code's settings.json.

Install is idempotent: when an entry for this application already exists the
file is left unchanged. Use 'claudehooks repair' to replace stale entries.`,
		Example: `  claudehooks install
  claudehooks install --force   # create ~/.claude if it does not exist`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupHooks,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if !force && !m.InstalledPrerequisite() {
				return missingClaude(m.Dir())
			}
			if m.IsConfigured() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already installed in %s\n", describeIdentity(m), m.FilePath())
				return nil
			}
			if err := runWithSpinner(cmd, "install hook", func() error { return m.Install(cmd.Context()) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed %s in %s\n", describeIdentity(m), m.FilePath())
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Install even if the Claude Code settings directory is missing")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"uninstall", "rm"},
		Short:   "Remove the notifier hook from settings.json",
		Long: `Remove every settings.json entry that belongs to this application's hook.

Entries of other applications, unrelated settings and non-object array elements
are preserved. The command prompts for confirmation unless --yes is given.`,
		Example: `  claudehooks remove
  claudehooks remove --yes`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupHooks,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if !m.IsConfigured() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not installed\n", describeIdentity(m))
				return nil
			}
			if !shared.Confirm(cmd, yes, fmt.Sprintf("Remove %s?", describeIdentity(m))) {
				fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
				return nil
			}
			if err := runWithSpinner(cmd, "remove hook", func() error { return m.RemoveHook(cmd.Context()) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", describeIdentity(m), m.FilePath())
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func newRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Replace stale or duplicate hook entries with one current entry",
		Long: `Remove all of this application's entries and install a single entry that
points at the current notifier path, in one locked update.`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupHooks,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if !m.InstalledPrerequisite() {
				return missingClaude(m.Dir())
			}
			if err := runWithSpinner(cmd, "repair hook", func() error { return m.CleanupAndInstallHook(cmd.Context()) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Repaired %s in %s\n", describeIdentity(m), m.FilePath())
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/progress"
	"github.com/spf13/cobra"
)

const syncSteps = 3

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Check the hook and install or repair it as needed",
		Long: `Bring the hook up to date in three steps:

  1. check that Claude Code is installed
  2. validate settings.json (stop on error)
  3. repair drifted entries, or install the hook if it is missing

Changes are confirmed interactively unless --yes is given. When input is not a
terminal and --yes is not set, no changes are made.`,
		Example: `  claudehooks sync
  claudehooks sync --yes          # for login scripts
  claudehooks sync --no-install   # only repair existing entries`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupHooks,
		RunE:    runSync,
	}
	cmd.Flags().BoolP("yes", "y", false, "Apply changes without prompting")
	cmd.Flags().Bool("no-install", false, "Do not offer to install a missing hook")
	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	noInstall, _ := cmd.Flags().GetBool("no-install")

	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	d := newDisplay(cmd)
	defer d.Stop()
	hookName := describeIdentity(m)

	prereq := progress.Step{Name: "check Claude Code", Number: 1, Total: syncSteps}
	_ = d.Start(prereq)
	if !m.InstalledPrerequisite() {
		err := missingClaude(m.Dir())
		d.Fail(prereq, err)
		return err
	}
	d.Complete(prereq, m.Dir())

	validate := progress.Step{Name: "validate settings", Number: 2, Total: syncSteps}
	_ = d.Start(validate)
	if err := m.Validate(); err != nil {
		d.Fail(validate, err)
		return err
	}
	d.Complete(validate, "")

	apply := progress.Step{Name: "update hook", Number: 3, Total: syncSteps}
	switch {
	case m.NeedsUpdate():
		d.Stop()
		if !shared.Confirm(cmd, yes, fmt.Sprintf("%s is out of date. Repair it?", hookName)) {
			d.Warn(apply, "repair declined")
			return nil
		}
		_ = d.Start(apply)
		if err := m.CleanupAndInstallHook(cmd.Context()); err != nil {
			d.Fail(apply, err)
			return err
		}
		d.Complete(apply, "repaired")

	case !m.IsConfigured():
		if noInstall {
			d.Warn(apply, "not installed")
			return nil
		}
		if !shared.Confirm(cmd, yes, fmt.Sprintf("Install %s?", hookName)) {
			d.Warn(apply, "install declined")
			return nil
		}
		_ = d.Start(apply)
		if err := m.Install(cmd.Context()); err != nil {
			d.Fail(apply, err)
			return err
		}
		d.Complete(apply, "installed")

	default:
		d.Complete(apply, "up to date")
	}
	return nil
}

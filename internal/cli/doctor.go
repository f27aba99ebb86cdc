package cli

import (
	"fmt"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/health"
	"github.com/ariel-frischer/claudehooks/internal/notify"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment the hook depends on",
		Long: `Check that Claude Code is installed, settings.json is readable, the notifier
executable exists, desktop notifications can be shown, and the hook is current.

Exit status is 1 when any check fails.`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupDiagnostics,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			checker := health.Checker{Manager: m, Sender: notify.NewSender()}
			report := checker.RunHealthChecks()
			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
			if !report.Passed {
				failed := 0
				for _, c := range report.Checks {
					if !c.Passed {
						failed++
					}
				}
				return shared.WithExitCode(shared.ExitValidationFailed, fmt.Errorf("%d of %d checks failed", failed, len(report.Checks)))
			}
			return nil
		},
	}
}

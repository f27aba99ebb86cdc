package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/progress"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show whether the hook is installed and current (st)",
		Long: `Show the Claude Code settings path, the resolved notifier, and every
settings entry recognized as this application's hook.

Exit status is 0 when the settings can be read, even if the hook is missing.`,
		Example: `  claudehooks status
  claudehooks status --plain   # no colors, key=value lines for scripts`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupDiagnostics,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			report, inspectErr := m.Inspect()
			out := cmd.OutOrStdout()
			if plain {
				printPlainStatus(out, m, report, inspectErr)
			} else {
				printPrettyStatus(out, m, report, inspectErr, colorEnabled(cmd))
			}
			return inspectErr
		},
	}
	cmd.Flags().Bool("plain", false, "Plain key=value output without colors")
	return cmd
}

// colorEnabled reports whether status output may use ANSI colors.
func colorEnabled(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return progress.DetectTerminalCapabilities(f).SupportsColor
}

func printPlainStatus(out io.Writer, m *claude.Manager, r claude.Report, inspectErr error) {
	fmt.Fprintf(out, "hook=%s\n", describeIdentity(m))
	fmt.Fprintf(out, "settings=%s\n", r.SettingsPath)
	fmt.Fprintf(out, "claude_installed=%t\n", r.DirExists)
	fmt.Fprintf(out, "settings_exists=%t\n", r.FileExists)
	fmt.Fprintf(out, "notifier=%s\n", r.NotifierPath)
	fmt.Fprintf(out, "notifier_found=%t\n", r.NotifierFound)
	valid := inspectErr == nil
	fmt.Fprintf(out, "valid=%t\n", valid)
	fmt.Fprintf(out, "configured=%t\n", r.Configured)
	fmt.Fprintf(out, "needs_update=%t\n", r.NeedsUpdate)
	for _, match := range r.Matches {
		for _, c := range match.Commands {
			fmt.Fprintf(out, "entry[%d]=%s\n", match.Index, c)
		}
	}
}

func printPrettyStatus(out io.Writer, m *claude.Manager, r claude.Report, inspectErr error, useColor bool) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	bold := color.New(color.Bold)
	for _, c := range []*color.Color{green, red, yellow, bold} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	ok := green.Sprint("✓")
	bad := red.Sprint("✗")
	warn := yellow.Sprint("!")

	mark := func(cond bool) string {
		if cond {
			return ok
		}
		return bad
	}

	fmt.Fprintln(out, bold.Sprint(describeIdentity(m)))
	fmt.Fprintf(out, "  %s Claude Code settings dir  %s\n", mark(r.DirExists), m.Dir())

	switch {
	case inspectErr != nil:
		fmt.Fprintf(out, "  %s settings.json             %v\n", bad, inspectErr)
	case !r.FileExists:
		fmt.Fprintf(out, "  %s settings.json             not created yet\n", warn)
	default:
		fmt.Fprintf(out, "  %s settings.json             %s\n", ok, r.SettingsPath)
	}

	if r.NotifierFound {
		fmt.Fprintf(out, "  %s notifier                  %s\n", ok, r.NotifierPath)
	} else {
		fmt.Fprintf(out, "  %s notifier                  not found\n", bad)
	}

	switch {
	case !r.Configured:
		fmt.Fprintf(out, "  %s hook                      not installed (run 'claudehooks install')\n", bad)
	case r.NeedsUpdate:
		fmt.Fprintf(out, "  %s hook                      needs update (run 'claudehooks repair')\n", warn)
	default:
		fmt.Fprintf(out, "  %s hook                      installed\n", ok)
	}

	for _, match := range r.Matches {
		state := "stale"
		if match.Current {
			state = "current"
		}
		for _, c := range match.Commands {
			fmt.Fprintf(out, "      [%d] %s (%s)\n", match.Index, c, state)
		}
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that settings.json is readable and well formed",
		Long: `Check that Claude Code's settings.json can be read and holds a JSON object.

A missing file is valid. Exit status is 1 when the file is corrupted or unreadable.`,
		Args:    cobra.NoArgs,
		GroupID: shared.GroupDiagnostics,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", m.FilePath())
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/completion"
	"github.com/spf13/cobra"
)

// newCompletionCmd replaces cobra's default completion command so that it can
// also install the script into the user's shell startup file.
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate or install shell completions",
		Long: `Generate the claudehooks completion script for a shell, or install it.

Print a script with 'claudehooks completion <shell>'. 'claudehooks completion
install' adds a marked block to your shell rc file (or writes a fish completion
file) after backing up the original.`,
		GroupID: shared.GroupConfiguration,
	}

	for _, shell := range completion.SupportedShells() {
		shell := shell
		cmd.AddCommand(&cobra.Command{
			Use:   string(shell),
			Short: fmt.Sprintf("Print the %s completion script", shell),
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				return generateCompletion(root, shell, c.OutOrStdout())
			},
		})
	}
	cmd.AddCommand(newCompletionInstallCmd(root), newCompletionUninstallCmd())
	return cmd
}

func generateCompletion(root *cobra.Command, shell completion.Shell, w io.Writer) error {
	switch shell {
	case completion.Bash:
		return root.GenBashCompletionV2(w, true)
	case completion.Zsh:
		return root.GenZshCompletion(w)
	case completion.Fish:
		return root.GenFishCompletion(w, true)
	case completion.PowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
}

func newCompletionInstallCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [bash|zsh|fish|powershell]",
		Short: "Install shell completions for claudehooks",
		Long: `Install shell completions for claudehooks.

Without an argument the shell is detected from $SHELL:

  - Bash: appends a sourcing block to ~/.bashrc
  - Zsh: appends a sourcing block to ~/.zshrc
  - Fish: writes ~/.config/fish/completions/claudehooks.fish
  - PowerShell: appends a sourcing block to $PROFILE

A backup (.claudehooks-backup-TIMESTAMP) is made before an rc file is changed.`,
		Example: `  claudehooks completion install
  claudehooks completion install zsh
  claudehooks completion install bash --manual`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			shell, err := shellFromArgs(cmd, args)
			if err != nil {
				return err
			}
			if manual, _ := cmd.Flags().GetBool("manual"); manual {
				fmt.Fprint(out, completion.ManualInstructions(shell))
				return nil
			}

			inst, err := newInstaller(root)
			if err != nil {
				return err
			}
			result, err := inst.Install(shell)
			if completion.IsPermissionError(err) {
				fmt.Fprintf(out, "Automatic installation failed: %v\n\n", err)
				fmt.Fprint(out, completion.ManualInstructions(shell))
				return nil
			}
			if err != nil {
				return err
			}

			switch result.Action {
			case completion.ActionSkipped:
				fmt.Fprintf(out, "Completion already installed in %s\n", result.Path)
			default:
				fmt.Fprintf(out, "Completion %s in %s\n", result.Action, result.Path)
				if result.BackupPath != "" {
					fmt.Fprintf(out, "Backup created at %s\n", result.BackupPath)
				}
				fmt.Fprintln(out, "Start a new shell session to activate it.")
			}
			return nil
		},
	}
	cmd.Flags().Bool("manual", false, "Show manual installation instructions without modifying files")
	return cmd
}

func newCompletionUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "uninstall [bash|zsh|fish|powershell]",
		Short:     "Remove installed shell completions",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := shellFromArgs(cmd, args)
			if err != nil {
				return err
			}
			inst, err := newInstaller(nil)
			if err != nil {
				return err
			}
			result, err := inst.Uninstall(shell)
			if err != nil {
				return err
			}
			if result.Action == completion.ActionSkipped {
				fmt.Fprintf(cmd.OutOrStdout(), "No claudehooks completion found in %s\n", result.Path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completion removed from %s\n", result.Path)
			return nil
		},
	}
}

func shellFromArgs(cmd *cobra.Command, args []string) (completion.Shell, error) {
	if len(args) > 0 {
		shell, err := completion.ParseShell(args[0])
		if err != nil {
			return "", shared.WithExitCode(shared.ExitInvalidArguments, err)
		}
		return shell, nil
	}
	shell, err := completion.DetectShell(os.Getenv("SHELL"), runtime.GOOS)
	if err != nil {
		return "", shared.WithExitCode(shared.ExitInvalidArguments, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Detected shell: %s\n", shell)
	return shell, nil
}

func newInstaller(root *cobra.Command) (*completion.Installer, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	inst := &completion.Installer{HomeDir: home, GOOS: runtime.GOOS}
	if root != nil {
		inst.Generate = func(shell completion.Shell, w io.Writer) error {
			return generateCompletion(root, shell, w)
		}
	}
	return inst, nil
}

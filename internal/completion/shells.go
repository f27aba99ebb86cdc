// Package completion installs the claudehooks shell completion into the
// user's shell startup files.
package completion

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Shell represents a supported shell type
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
)

// SupportedShells returns the list of all supported shell types
func SupportedShells() []Shell {
	return []Shell{Bash, Zsh, Fish, PowerShell}
}

// ParseShell maps a shell name, case-insensitively, to a Shell.
func ParseShell(s string) (Shell, error) {
	switch Shell(strings.ToLower(s)) {
	case Bash:
		return Bash, nil
	case Zsh:
		return Zsh, nil
	case Fish:
		return Fish, nil
	case PowerShell, "pwsh":
		return PowerShell, nil
	default:
		return "", fmt.Errorf("unsupported shell %q; supported shells are: %s", s, shellList())
	}
}

// DetectShell derives the shell from the value of $SHELL. On Windows an
// empty value means PowerShell.
func DetectShell(shellEnv, goos string) (Shell, error) {
	if shellEnv == "" {
		if goos == "windows" {
			return PowerShell, nil
		}
		return "", fmt.Errorf("$SHELL is not set; specify one of: %s", shellList())
	}
	return ParseShell(filepath.Base(shellEnv))
}

func shellList() string {
	names := make([]string, 0, len(SupportedShells()))
	for _, s := range SupportedShells() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Target is where the completion for a shell is installed. Fish loads a
// standalone script; the other shells get a marked block in their rc file.
type Target struct {
	Shell      Shell
	Path       string
	Standalone bool
}

// TargetFor returns the install location for shell under homeDir.
func TargetFor(shell Shell, homeDir, goos string) Target {
	switch shell {
	case Bash:
		return Target{Shell: Bash, Path: filepath.Join(homeDir, ".bashrc")}
	case Zsh:
		return Target{Shell: Zsh, Path: filepath.Join(homeDir, ".zshrc")}
	case Fish:
		return Target{
			Shell:      Fish,
			Path:       filepath.Join(homeDir, ".config", "fish", "completions", "claudehooks.fish"),
			Standalone: true,
		}
	case PowerShell:
		if goos == "windows" {
			return Target{Shell: PowerShell, Path: filepath.Join(homeDir, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1")}
		}
		return Target{Shell: PowerShell, Path: filepath.Join(homeDir, ".config", "powershell", "Microsoft.PowerShell_profile.ps1")}
	default:
		return Target{}
	}
}

// Block markers delimit the lines owned by claudehooks in an rc file.
const (
	StartMarker = "# >>> claudehooks completion >>>"
	EndMarker   = "# <<< claudehooks completion <<<"
)

// Block returns the marked rc-file block that loads completions for shell,
// or "" for shells that use a standalone script.
func Block(shell Shell) string {
	var content string
	switch shell {
	case Bash:
		content = "source <(claudehooks completion bash)"
	case Zsh:
		content = "autoload -U compinit && compinit\nsource <(claudehooks completion zsh)"
	case PowerShell:
		content = "claudehooks completion powershell | Out-String | Invoke-Expression"
	default:
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n", StartMarker, content, EndMarker)
}

// ManualInstructions explains how to enable completions for shell by hand.
func ManualInstructions(shell Shell) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Manual installation instructions for %s:\n\n", shell)

	if shell == Fish {
		sb.WriteString("Run the following command:\n\n")
		sb.WriteString("  claudehooks completion fish > ~/.config/fish/completions/claudehooks.fish\n")
		return sb.String()
	}

	rc := map[Shell]string{Bash: "~/.bashrc", Zsh: "~/.zshrc", PowerShell: "your PowerShell profile ($PROFILE)"}[shell]
	fmt.Fprintf(&sb, "Add the following to %s:\n\n", rc)
	for _, line := range strings.Split(strings.TrimRight(Block(shell), "\n"), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\nThen start a new shell session.\n")
	return sb.String()
}

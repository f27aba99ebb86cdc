package shared

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PromptYesNo asks question on the command's output and reads the answer from
// its input. Anything other than y/yes is a no.
func PromptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}

// CanPrompt reports whether in is an interactive terminal. Readers that are
// not files (as in tests) count as interactive.
func CanPrompt(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

// Confirm returns true when yes is set, otherwise prompts if input is
// interactive and declines if it is not.
func Confirm(cmd *cobra.Command, yes bool, question string) bool {
	if yes {
		return true
	}
	if !CanPrompt(cmd.InOrStdin()) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s skipped: not a terminal (use --yes)\n", question)
		return false
	}
	return PromptYesNo(cmd, question)
}

// claudehooks manages the claude-notifier hook in Claude Code's settings.json.
package main

import (
	"os"

	"github.com/ariel-frischer/claudehooks/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

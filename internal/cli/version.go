package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/claudehooks/internal/build"
	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for claudehooks",
		Args:    cobra.NoArgs,
		GroupID: shared.GroupConfiguration,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if build.IsDevBuild() {
				fmt.Fprintf(out, "claudehooks %s (development build)\n", build.Version)
			} else {
				fmt.Fprintf(out, "claudehooks %s\n", build.Version)
			}
			fmt.Fprintf(out, "commit: %s\n", build.Commit)
			fmt.Fprintf(out, "built: %s\n", build.BuildDate)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

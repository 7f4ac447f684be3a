package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the command printing the build version. The Go
// runtime and platform are included because plugin images are built per
// architecture.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sparkdeploy",
		Long:  `Prints the sparkdeploy version together with the Go runtime and platform it was built for.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sparkdeploy version %s\n", rootCmd.Version)
			fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if releaseRepository != "" {
				fmt.Fprintf(out, "releases: https://github.com/%s\n", releaseRepository)
			}
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("shadergate %s\n", version)
			cmd.Printf("  build date: %s\n", buildDate)
			cmd.Printf("  commit:     %s\n", gitCommit)
		},
	}
}

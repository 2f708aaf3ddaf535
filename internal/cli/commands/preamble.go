package commands

import (
	"fmt"

	"github.com/leapstack-labs/shadergate/pkg/preamble"
	"github.com/spf13/cobra"
)

// NewPreambleCommand creates the preamble command.
func NewPreambleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preamble",
		Short: "Print the macro preamble for a compile configuration",
		Long: `Print the macro-definition preamble a preprocessor would see for the
given profile, version, stage, and target. The output is byte-stable
for identical inputs and is printed raw, one #define per line.`,
		Example: `  # Desktop core profile, GLSL 4.50
  shadergate preamble --profile core --glsl-version 450

  # OpenGL ES 3.10 for Vulkan
  shadergate preamble --profile es --glsl-version 310 --vulkan 100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := loadJob(cmd)
			if err != nil {
				return err
			}
			cfg, err := job.GateConfig()
			if err != nil {
				return err
			}
			text := preamble.Build(cfg.Profile, cfg.Version, cfg.Stage, cfg.Target)
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	addJobFlags(cmd)
	return cmd
}

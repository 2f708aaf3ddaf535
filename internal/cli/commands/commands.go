// Package commands implements the shadergate subcommands.
package commands

import (
	"github.com/leapstack-labs/shadergate/internal/cli/output"
	"github.com/leapstack-labs/shadergate/internal/config"
	"github.com/spf13/cobra"
)

// addJobFlags registers the compile-unit flags shared by preamble and
// check. Flag names map to config keys (kebab-case to snake_case), so
// every flag can also come from shadergate.yaml or SHADERGATE_* env
// vars.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", "", "Language profile: none, core, compatibility, es")
	cmd.Flags().Int("glsl-version", 0, "GLSL version number (e.g. 450, 310)")
	cmd.Flags().String("stage", "", "Shader stage: vertex, tess-control, tess-evaluation, geometry, fragment, compute")
	cmd.Flags().Bool("spirv", false, "Compile for SPIR-V generation")
	cmd.Flags().Int("vulkan", 0, "Vulkan semantics version (0 = not Vulkan)")
	cmd.Flags().Int("opengl-spirv", 0, "OpenGL SPIR-V version (0 = none)")
	cmd.Flags().Bool("forward-compatible", false, "Treat deprecated features as errors")
	cmd.Flags().Bool("relaxed-errors", false, "Downgrade certain missing-extension errors to warnings")
	cmd.Flags().Bool("suppress-warnings", false, "Suppress warning output from checks")
}

// loadJob loads the job configuration for a command, honoring the
// persistent --config flag and the command's own flags.
func loadJob(cmd *cobra.Command) (*config.Job, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(cfgFile, cmd.Flags())
}

// newRenderer builds the renderer for a command from the --output flag
// or the job config.
func newRenderer(cmd *cobra.Command, job *config.Job) *output.Renderer {
	mode := output.Mode(job.OutputFormat)
	if flagMode, _ := cmd.Flags().GetString("output"); flagMode != "" {
		mode = output.Mode(flagMode)
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
}

package gate_test

import (
	"testing"

	"github.com/leapstack-labs/shadergate/pkg/diag"
	"github.com/leapstack-labs/shadergate/pkg/extension"
	"github.com/leapstack-labs/shadergate/pkg/gate"
	"github.com/leapstack-labs/shadergate/pkg/profile"
	"github.com/leapstack-labs/shadergate/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(cfg gate.Config) (*gate.Gate, *diag.Collector) {
	var sink diag.Collector
	return gate.New(cfg, &sink), &sink
}

var pos = token.Position{Line: 1}

func TestRequireProfile(t *testing.T) {
	t.Run("allowed profile passes", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 300})
		g.RequireProfile(pos, profile.ES|profile.Core, "texture buffer")
		assert.Zero(t, sink.Len())
	})

	t.Run("disallowed profile errors", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 300})
		g.RequireProfile(pos, profile.Desktop, "double")

		require.Equal(t, 1, sink.Len())
		d := sink.All()[0]
		assert.Equal(t, diag.CodeProfile, d.Code)
		assert.Equal(t, diag.SeverityError, d.Severity)
		assert.Equal(t, "'double' : not supported with this profile: es", d.Message)
	})
}

func TestProfileRequires(t *testing.T) {
	t.Run("no-op outside the allowed mask", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.ProfileRequires(pos, profile.Desktop, 400, "double")
		assert.Zero(t, sink.Len(), "check outside the allowed mask must not diagnose")
	})

	t.Run("version satisfies", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 400})
		g.ProfileRequires(pos, profile.Core, 400, "double")
		assert.Zero(t, sink.Len())
	})

	t.Run("version too low errors", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 330})
		g.ProfileRequires(pos, profile.Core, 400, "double")

		require.Equal(t, 1, sink.Len())
		d := sink.All()[0]
		assert.Equal(t, diag.CodeVersionOrExtension, d.Code)
		assert.Equal(t, "'double' : not supported for this version or the enabled extensions", d.Message)
	})

	t.Run("enabled extension satisfies below min version", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 330})
		g.ApplyDirective(pos, extension.GL_ARB_gpu_shader5, "enable")
		sink.Reset() // drop the partial-support warning from the directive

		g.ProfileRequires(pos, profile.Core, 400, "textureGather", extension.GL_ARB_gpu_shader5)
		assert.Zero(t, sink.Len())
	})

	t.Run("warn extension satisfies with usage warning", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.ApplyDirective(pos, extension.GL_OES_standard_derivatives, "warn")

		g.ProfileRequires(pos, profile.ES, 300, "dFdx", extension.GL_OES_standard_derivatives)
		require.Equal(t, 1, sink.Len())
		d := sink.All()[0]
		assert.Equal(t, diag.CodeExtensionUsed, d.Code)
		assert.Equal(t, diag.SeverityWarning, d.Severity)
		assert.Equal(t, "extension GL_OES_standard_derivatives is being used for dFdx", d.Message)
	})

	t.Run("zero min version with no extensions always errors", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 460})
		g.ProfileRequires(pos, profile.Core, 0, "vendor feature")
		assert.Equal(t, 1, sink.ErrorCount())
	})
}

func TestRequireStage(t *testing.T) {
	g, sink := newGate(gate.Config{Profile: profile.Core, Version: 450, Stage: profile.Vertex})
	g.RequireStage(pos, profile.Fragment.Mask(), "dFdx")

	require.Equal(t, 1, sink.Len())
	d := sink.All()[0]
	assert.Equal(t, diag.CodeStage, d.Code)
	assert.Equal(t, "'dFdx' : not supported in this stage: vertex", d.Message)

	sink.Reset()
	g.RequireStage(pos, profile.Vertex.Mask()|profile.Fragment.Mask(), "gl_Position")
	assert.Zero(t, sink.Len())
}

func TestCheckDeprecated(t *testing.T) {
	t.Run("below deprecation version is silent", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.None, Version: 120})
		g.CheckDeprecated(pos, profile.Desktop, 130, "varying")
		assert.Zero(t, sink.Len())
	})

	t.Run("warns by default", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.None, Version: 140})
		g.CheckDeprecated(pos, profile.Desktop, 130, "varying")

		require.Equal(t, 1, sink.Len())
		d := sink.All()[0]
		assert.Equal(t, diag.SeverityWarning, d.Severity)
		assert.Equal(t, "varying deprecated in version 130; may be removed in future release", d.Message)
	})

	t.Run("errors under forward-compatible", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.None, Version: 140, ForwardCompatible: true})
		g.CheckDeprecated(pos, profile.Desktop, 130, "varying")

		require.Equal(t, 1, sink.ErrorCount())
		assert.Equal(t, "'varying' : deprecated, may be removed in future release", sink.All()[0].Message)
	})

	t.Run("suppressed warnings stay silent", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.None, Version: 140, SuppressWarnings: true})
		g.CheckDeprecated(pos, profile.Desktop, 130, "varying")
		assert.Zero(t, sink.Len())
	})
}

func TestRequireNotRemoved(t *testing.T) {
	g, sink := newGate(gate.Config{Profile: profile.Core, Version: 420})
	g.RequireNotRemoved(pos, profile.Core, 420, "gl_FragColor")

	require.Equal(t, 1, sink.Len())
	d := sink.All()[0]
	assert.Equal(t, diag.CodeRemovedFeature, d.Code)
	assert.Equal(t, "'gl_FragColor' : no longer supported in core profile; removed in version 420", d.Message)

	// One version below the removal point is still allowed.
	g2, sink2 := newGate(gate.Config{Profile: profile.Core, Version: 410})
	g2.RequireNotRemoved(pos, profile.Core, 420, "gl_FragColor")
	assert.Zero(t, sink2.Len())
}

func TestRequireExtensions(t *testing.T) {
	t.Run("missing single extension", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.RequireExtensions(pos, "derivatives", extension.GL_OES_standard_derivatives)

		require.Equal(t, 1, sink.Len())
		d := sink.All()[0]
		assert.Equal(t, diag.CodeMissingExtension, d.Code)
		assert.Equal(t, diag.SeverityError, d.Severity)
		assert.Equal(t, "'derivatives' : required extension not requested: GL_OES_standard_derivatives", d.Message)
	})

	t.Run("missing multiple extensions lists candidates", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 310})
		g.RequireExtensions(pos, "geometry shaders",
			extension.GL_EXT_geometry_shader, extension.GL_OES_geometry_shader)

		all := sink.All()
		require.Len(t, all, 3)
		assert.Equal(t, "'geometry shaders' : required extension not requested: Possible extensions include:", all[0].Message)
		assert.Equal(t, diag.SeverityInfo, all[1].Severity)
		assert.Equal(t, extension.GL_EXT_geometry_shader, all[1].Message)
		assert.Equal(t, extension.GL_OES_geometry_shader, all[2].Message)
	})

	t.Run("enabled extension passes", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.ApplyDirective(pos, extension.GL_OES_standard_derivatives, "enable")
		g.RequireExtensions(pos, "derivatives", extension.GL_OES_standard_derivatives)
		assert.Zero(t, sink.Len())
	})

	t.Run("warn extension passes with warning", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.ApplyDirective(pos, extension.GL_OES_standard_derivatives, "warn")
		g.RequireExtensions(pos, "derivatives", extension.GL_OES_standard_derivatives)

		require.Equal(t, 1, sink.Len())
		assert.Equal(t, diag.CodeExtensionUsed, sink.All()[0].Code)
	})

	t.Run("relaxed errors promote to warnings", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100, RelaxedErrors: true})
		g.RequireExtensions(pos, "derivatives", extension.GL_OES_standard_derivatives)

		assert.Zero(t, sink.ErrorCount())
		warnings := sink.Warnings()
		require.Len(t, warnings, 2)
		assert.Equal(t, "The following extension must be enabled to use this feature:", warnings[0].Message)
		assert.Equal(t, diag.CodeExtensionUsed, warnings[1].Code)
	})
}

func TestTargetChecks(t *testing.T) {
	spv := gate.Config{Profile: profile.Core, Version: 450, Target: gate.Target{Spirv: true}}
	vulkan := gate.Config{Profile: profile.Core, Version: 450, Target: gate.Target{Spirv: true, Vulkan: 100}}
	plain := gate.Config{Profile: profile.Core, Version: 450}

	t.Run("SpvRemoved", func(t *testing.T) {
		g, sink := newGate(spv)
		g.SpvRemoved(pos, "gl_DepthRangeParameters")
		require.Equal(t, 1, sink.Len())
		assert.Equal(t, diag.CodeRemovedUnderSpv, sink.All()[0].Code)

		g2, sink2 := newGate(plain)
		g2.SpvRemoved(pos, "gl_DepthRangeParameters")
		assert.Zero(t, sink2.Len())
	})

	t.Run("VulkanRemoved", func(t *testing.T) {
		g, sink := newGate(vulkan)
		g.VulkanRemoved(pos, "gl_NumSamples")
		require.Equal(t, 1, sink.Len())
		assert.Equal(t, "'gl_NumSamples' : not allowed when using GLSL for Vulkan", sink.All()[0].Message)

		g2, sink2 := newGate(spv)
		g2.VulkanRemoved(pos, "gl_NumSamples")
		assert.Zero(t, sink2.Len(), "OpenGL SPIR-V is not Vulkan")
	})

	t.Run("RequireVulkan", func(t *testing.T) {
		g, sink := newGate(plain)
		g.RequireVulkan(pos, "push_constant")
		require.Equal(t, 1, sink.Len())
		assert.Equal(t, diag.CodeRequiresVulkan, sink.All()[0].Code)

		g2, sink2 := newGate(vulkan)
		g2.RequireVulkan(pos, "push_constant")
		assert.Zero(t, sink2.Len())
	})

	t.Run("RequireSpv", func(t *testing.T) {
		g, sink := newGate(plain)
		g.RequireSpv(pos, "spirv_instruction")
		require.Equal(t, 1, sink.Len())
		assert.Equal(t, diag.CodeRequiresSpv, sink.All()[0].Code)

		g2, sink2 := newGate(spv)
		g2.RequireSpv(pos, "spirv_instruction")
		assert.Zero(t, sink2.Len())
	})
}

func TestUnimplemented(t *testing.T) {
	g, sink := newGate(gate.Config{Profile: profile.Core, Version: 450})
	g.Unimplemented(pos, "subroutine")

	require.Equal(t, 1, sink.Len())
	d := sink.All()[0]
	assert.Equal(t, diag.CodeNotImplemented, d.Code)
	assert.Equal(t, "'subroutine' : feature not yet implemented", d.Message)
}

func TestCompositeChecks(t *testing.T) {
	t.Run("full integer ok on ES 300", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 300})
		g.FullIntegerCheck(pos, "uint")
		assert.Zero(t, sink.Len())
	})

	t.Run("full integer rejected on ES 100", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.FullIntegerCheck(pos, "uint")
		assert.Equal(t, 1, sink.ErrorCount())
	})

	t.Run("double rejected on ES", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 310})
		g.DoubleCheck(pos, "double")
		require.Equal(t, 1, sink.Len(), "only the profile check fires; version checks are no-ops outside their mask")
		assert.Equal(t, diag.CodeProfile, sink.All()[0].Code)
	})

	t.Run("double ok on core 400", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 400})
		g.DoubleCheck(pos, "double")
		assert.Zero(t, sink.Len())
	})

	t.Run("int64 skipped for builtins", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.ES, Version: 100})
		g.Int64Check(pos, "int64_t", true)
		assert.Zero(t, sink.Len())
	})

	t.Run("int64 needs the ARB extension", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 450})
		g.Int64Check(pos, "int64_t", false)
		require.NotZero(t, sink.ErrorCount())
		assert.Equal(t, "'shader int64' : required extension not requested: GL_ARB_gpu_shader_int64", sink.All()[0].Message)
	})

	t.Run("int64 ok with extension on core 450", func(t *testing.T) {
		g, sink := newGate(gate.Config{Profile: profile.Core, Version: 450})
		g.ApplyDirective(pos, extension.GL_ARB_gpu_shader_int64, "enable")
		g.Int64Check(pos, "int64_t", false)
		assert.Zero(t, sink.Len())
	})
}

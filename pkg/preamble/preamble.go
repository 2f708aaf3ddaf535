// Package preamble generates the macro-definition text injected before
// user source, prior to preprocessing.
//
// The preamble is informational, not a gate: it is independent of the
// unit's extension behavior state and depends only on profile, version,
// and target. Output is byte-for-byte stable across calls with identical
// inputs; a downstream preprocessor consumes it verbatim.
package preamble

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/shadergate/pkg/gate"
	"github.com/leapstack-labs/shadergate/pkg/profile"
)

// esDefines are the macros exposed under the ES profile, including the
// Android Extension Pack set and its OES twins.
var esDefines = []string{
	"GL_ES",
	"GL_FRAGMENT_PRECISION_HIGH",
	"GL_OES_texture_3D",
	"GL_OES_standard_derivatives",
	"GL_EXT_frag_depth",
	"GL_OES_EGL_image_external",
	"GL_EXT_shader_texture_lod",
	"GL_EXT_shadow_samplers",

	// AEP
	"GL_ANDROID_extension_pack_es31a",
	"GL_KHR_blend_equation_advanced",
	"GL_OES_sample_variables",
	"GL_OES_shader_image_atomic",
	"GL_OES_shader_multisample_interpolation",
	"GL_OES_texture_storage_multisample_2d_array",
	"GL_EXT_geometry_shader",
	"GL_EXT_geometry_point_size",
	"GL_EXT_gpu_shader5",
	"GL_EXT_primitive_bounding_box",
	"GL_EXT_shader_io_blocks",
	"GL_EXT_tessellation_shader",
	"GL_EXT_tessellation_point_size",
	"GL_EXT_texture_buffer",
	"GL_EXT_texture_cube_map_array",

	// OES matching AEP
	"GL_OES_geometry_shader",
	"GL_OES_geometry_point_size",
	"GL_OES_gpu_shader5",
	"GL_OES_primitive_bounding_box",
	"GL_OES_shader_io_blocks",
	"GL_OES_tessellation_shader",
	"GL_OES_tessellation_point_size",
	"GL_OES_texture_buffer",
	"GL_OES_texture_cube_map_array",
	"GL_EXT_shader_non_constant_global_initializers",
}

// desktopDefines are the macros exposed under the non-ES profiles.
var desktopDefines = []string{
	"GL_FRAGMENT_PRECISION_HIGH",
	"GL_ARB_texture_rectangle",
	"GL_ARB_shading_language_420pack",
	"GL_ARB_texture_gather",
	"GL_ARB_gpu_shader5",
	"GL_ARB_separate_shader_objects",
	"GL_ARB_compute_shader",
	"GL_ARB_tessellation_shader",
	"GL_ARB_enhanced_layouts",
	"GL_ARB_texture_cube_map_array",
	"GL_ARB_shader_texture_lod",
	"GL_ARB_explicit_attrib_location",
	"GL_ARB_shader_image_load_store",
	"GL_ARB_shader_atomic_counters",
	"GL_ARB_shader_draw_parameters",
	"GL_ARB_shader_group_vote",
	"GL_ARB_derivative_control",
	"GL_ARB_shader_texture_image_samples",
	"GL_ARB_viewport_array",
	"GL_ARB_gpu_shader_int64",
	"GL_ARB_shader_ballot",
	"GL_ARB_sparse_texture2",
	"GL_ARB_sparse_texture_clamp",
	"GL_ARB_shader_stencil_export",
	"GL_ARB_post_depth_coverage",
	"GL_EXT_shader_non_constant_global_initializers",
	"GL_EXT_shader_image_load_formatted",
	"GL_EXT_post_depth_coverage",

	"GL_AMD_shader_ballot",
	"GL_AMD_shader_trinary_minmax",
	"GL_AMD_shader_explicit_vertex_parameter",
	"GL_AMD_gcn_shader",
	"GL_AMD_gpu_shader_half_float",
	"GL_AMD_texture_gather_bias_lod",
	"GL_AMD_gpu_shader_int16",
	"GL_AMD_shader_image_load_store_lod",

	"GL_NV_sample_mask_override_coverage",
	"GL_NV_geometry_shader_passthrough",
	"GL_NV_viewport_array2",
}

// Build returns the preamble for a compile unit. Each macro is a
// newline-terminated "#define NAME 1" line (or "#define NAME <n>" for
// the versioned target macros); ordering is fixed.
func Build(p profile.Profile, version int, stage profile.Stage, target gate.Target) string {
	_ = stage // present for signature symmetry with the gate; no stage-specific macros yet

	var b strings.Builder

	if p == profile.ES {
		writeDefines(&b, esDefines)
	} else {
		writeDefines(&b, desktopDefines)

		if version >= 150 {
			// define GL_core_profile and GL_compatibility_profile
			writeDefine(&b, "GL_core_profile", "1")
			if p == profile.Compatibility {
				writeDefine(&b, "GL_compatibility_profile", "1")
			}
		}
	}

	if (p != profile.ES && version >= 140) || (p == profile.ES && version >= 310) {
		writeDefine(&b, "GL_EXT_device_group", "1")
		writeDefine(&b, "GL_EXT_multiview", "1")
	}

	if version >= 300 { // both ES and non-ES
		writeDefine(&b, "GL_OVR_multiview", "1")
		writeDefine(&b, "GL_OVR_multiview2", "1")
	}

	// #line and #include
	writeDefine(&b, "GL_GOOGLE_cpp_style_line_directive", "1")
	writeDefine(&b, "GL_GOOGLE_include_directive", "1")

	if target.Vulkan > 0 {
		writeDefine(&b, "VULKAN", strconv.Itoa(target.Vulkan))
	}
	if target.OpenGLSpirv > 0 {
		writeDefine(&b, "GL_SPIRV", strconv.Itoa(target.OpenGLSpirv))
	}

	return b.String()
}

func writeDefines(b *strings.Builder, names []string) {
	for _, name := range names {
		writeDefine(b, name, "1")
	}
}

// writeDefine emits one macro line. The trailing newline matters: it
// ends the preprocessing token.
func writeDefine(b *strings.Builder, name, value string) {
	b.WriteString("#define ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

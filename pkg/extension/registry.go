package extension

import "sort"

// defaults is the build-time registry: every extension the tool knows
// about, with its initial behavior. Almost everything starts disabled;
// once a feature is incorporated into a core version it is allowed
// through the version check, not a pseudo-enablement of the extension.
var defaults = map[string]Behavior{
	GL_OES_texture_3D:           Disable,
	GL_OES_standard_derivatives: Disable,
	GL_EXT_frag_depth:           Disable,
	GL_OES_EGL_image_external:   Disable,
	GL_EXT_shader_texture_lod:   Disable,
	GL_EXT_shadow_samplers:      Disable,

	GL_ARB_texture_rectangle:            Disable,
	GL_3DL_array_objects:                Disable,
	GL_ARB_shading_language_420pack:     Disable,
	GL_ARB_texture_gather:               Disable,
	GL_ARB_gpu_shader5:                  DisablePartial,
	GL_ARB_separate_shader_objects:      Disable,
	GL_ARB_compute_shader:               Disable,
	GL_ARB_tessellation_shader:          Disable,
	GL_ARB_enhanced_layouts:             Disable,
	GL_ARB_texture_cube_map_array:       Disable,
	GL_ARB_shader_texture_lod:           Disable,
	GL_ARB_explicit_attrib_location:     Disable,
	GL_ARB_shader_image_load_store:      Disable,
	GL_ARB_shader_atomic_counters:       Disable,
	GL_ARB_shader_draw_parameters:       Disable,
	GL_ARB_shader_group_vote:            Disable,
	GL_ARB_derivative_control:           Disable,
	GL_ARB_shader_texture_image_samples: Disable,
	GL_ARB_viewport_array:               Disable,
	GL_ARB_gpu_shader_int64:             Disable,
	GL_ARB_shader_ballot:                Disable,
	GL_ARB_sparse_texture2:              Disable,
	GL_ARB_sparse_texture_clamp:         Disable,
	GL_ARB_shader_stencil_export:        Disable,
	GL_ARB_post_depth_coverage:          Disable,
	GL_ARB_shader_viewport_layer_array:  Disable,

	GL_EXT_shader_non_constant_global_initializers: Disable,
	GL_EXT_shader_image_load_formatted:             Disable,
	GL_EXT_post_depth_coverage:                     Disable,

	GL_GOOGLE_cpp_style_line_directive: Disable,
	GL_GOOGLE_include_directive:        Disable,

	GL_AMD_shader_ballot:                    Disable,
	GL_AMD_shader_trinary_minmax:            Disable,
	GL_AMD_shader_explicit_vertex_parameter: Disable,
	GL_AMD_gcn_shader:                       Disable,
	GL_AMD_gpu_shader_half_float:            Disable,
	GL_AMD_texture_gather_bias_lod:          Disable,
	GL_AMD_gpu_shader_int16:                 Disable,
	GL_AMD_shader_image_load_store_lod:      Disable,

	GL_NV_sample_mask_override_coverage:  Disable,
	GL_NV_geometry_shader_passthrough:    Disable,
	GL_NV_viewport_array2:                Disable,
	GL_NV_stereo_view_rendering:          Disable,
	GL_NVX_multiview_per_view_attributes: Disable,

	GL_ANDROID_extension_pack_es31a:             Disable,
	GL_KHR_blend_equation_advanced:              Disable,
	GL_OES_sample_variables:                     Disable,
	GL_OES_shader_image_atomic:                  Disable,
	GL_OES_shader_multisample_interpolation:     Disable,
	GL_OES_texture_storage_multisample_2d_array: Disable,
	GL_EXT_geometry_shader:                      Disable,
	GL_EXT_geometry_point_size:                  Disable,
	GL_EXT_gpu_shader5:                          Disable,
	GL_EXT_primitive_bounding_box:               Disable,
	GL_EXT_shader_io_blocks:                     Disable,
	GL_EXT_tessellation_shader:                  Disable,
	GL_EXT_tessellation_point_size:              Disable,
	GL_EXT_texture_buffer:                       Disable,
	GL_EXT_texture_cube_map_array:               Disable,

	GL_OES_geometry_shader:         Disable,
	GL_OES_geometry_point_size:     Disable,
	GL_OES_gpu_shader5:             Disable,
	GL_OES_primitive_bounding_box:  Disable,
	GL_OES_shader_io_blocks:        Disable,
	GL_OES_tessellation_shader:     Disable,
	GL_OES_tessellation_point_size: Disable,
	GL_OES_texture_buffer:          Disable,
	GL_OES_texture_cube_map_array:  Disable,

	GL_EXT_device_group: Disable,
	GL_EXT_multiview:    Disable,

	GL_OVR_multiview:  Disable,
	GL_OVR_multiview2: Disable,
}

// Default returns the registry default for an extension, or false if the
// identifier is not known to the tool.
func Default(id string) (Behavior, bool) {
	b, ok := defaults[id]
	return b, ok
}

// Known reports whether the identifier is in the registry.
func Known(id string) bool {
	_, ok := defaults[id]
	return ok
}

// All returns every registered identifier, sorted.
func All() []string {
	ids := make([]string, 0, len(defaults))
	for id := range defaults {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Defaults returns a fresh copy of the default behavior table, suitable
// as the starting state of one compile unit.
func Defaults() map[string]Behavior {
	out := make(map[string]Behavior, len(defaults))
	for id, b := range defaults {
		out[id] = b
	}
	return out
}

// Count returns the number of registered extensions.
func Count() int {
	return len(defaults)
}

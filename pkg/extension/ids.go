package extension

// Extension identifiers. Constant names mirror the extension strings
// they denote so call sites read like the directives that control them.
//
//nolint:revive // GL_* names intentionally match the GLSL extension strings
const (
	GL_OES_texture_3D           = "GL_OES_texture_3D"
	GL_OES_standard_derivatives = "GL_OES_standard_derivatives"
	GL_EXT_frag_depth           = "GL_EXT_frag_depth"
	GL_OES_EGL_image_external   = "GL_OES_EGL_image_external"
	GL_EXT_shader_texture_lod   = "GL_EXT_shader_texture_lod"
	GL_EXT_shadow_samplers      = "GL_EXT_shadow_samplers"

	GL_ARB_texture_rectangle            = "GL_ARB_texture_rectangle"
	GL_3DL_array_objects                = "GL_3DL_array_objects"
	GL_ARB_shading_language_420pack     = "GL_ARB_shading_language_420pack"
	GL_ARB_texture_gather               = "GL_ARB_texture_gather"
	GL_ARB_gpu_shader5                  = "GL_ARB_gpu_shader5"
	GL_ARB_separate_shader_objects      = "GL_ARB_separate_shader_objects"
	GL_ARB_compute_shader               = "GL_ARB_compute_shader"
	GL_ARB_tessellation_shader          = "GL_ARB_tessellation_shader"
	GL_ARB_enhanced_layouts             = "GL_ARB_enhanced_layouts"
	GL_ARB_texture_cube_map_array       = "GL_ARB_texture_cube_map_array"
	GL_ARB_shader_texture_lod           = "GL_ARB_shader_texture_lod"
	GL_ARB_explicit_attrib_location     = "GL_ARB_explicit_attrib_location"
	GL_ARB_shader_image_load_store      = "GL_ARB_shader_image_load_store"
	GL_ARB_shader_atomic_counters       = "GL_ARB_shader_atomic_counters"
	GL_ARB_shader_draw_parameters       = "GL_ARB_shader_draw_parameters"
	GL_ARB_shader_group_vote            = "GL_ARB_shader_group_vote"
	GL_ARB_derivative_control           = "GL_ARB_derivative_control"
	GL_ARB_shader_texture_image_samples = "GL_ARB_shader_texture_image_samples"
	GL_ARB_viewport_array               = "GL_ARB_viewport_array"
	GL_ARB_gpu_shader_int64             = "GL_ARB_gpu_shader_int64"
	GL_ARB_shader_ballot                = "GL_ARB_shader_ballot"
	GL_ARB_sparse_texture2              = "GL_ARB_sparse_texture2"
	GL_ARB_sparse_texture_clamp         = "GL_ARB_sparse_texture_clamp"
	GL_ARB_shader_stencil_export        = "GL_ARB_shader_stencil_export"
	GL_ARB_post_depth_coverage          = "GL_ARB_post_depth_coverage"
	GL_ARB_shader_viewport_layer_array  = "GL_ARB_shader_viewport_layer_array"

	GL_EXT_shader_non_constant_global_initializers = "GL_EXT_shader_non_constant_global_initializers"
	GL_EXT_shader_image_load_formatted             = "GL_EXT_shader_image_load_formatted"
	GL_EXT_post_depth_coverage                     = "GL_EXT_post_depth_coverage"

	// #line and #include
	GL_GOOGLE_cpp_style_line_directive = "GL_GOOGLE_cpp_style_line_directive"
	GL_GOOGLE_include_directive        = "GL_GOOGLE_include_directive"

	GL_AMD_shader_ballot                    = "GL_AMD_shader_ballot"
	GL_AMD_shader_trinary_minmax            = "GL_AMD_shader_trinary_minmax"
	GL_AMD_shader_explicit_vertex_parameter = "GL_AMD_shader_explicit_vertex_parameter"
	GL_AMD_gcn_shader                       = "GL_AMD_gcn_shader"
	GL_AMD_gpu_shader_half_float            = "GL_AMD_gpu_shader_half_float"
	GL_AMD_texture_gather_bias_lod          = "GL_AMD_texture_gather_bias_lod"
	GL_AMD_gpu_shader_int16                 = "GL_AMD_gpu_shader_int16"
	GL_AMD_shader_image_load_store_lod      = "GL_AMD_shader_image_load_store_lod"

	GL_NV_sample_mask_override_coverage  = "GL_NV_sample_mask_override_coverage"
	GL_NV_geometry_shader_passthrough    = "GL_NV_geometry_shader_passthrough"
	GL_NV_viewport_array2                = "GL_NV_viewport_array2"
	GL_NV_stereo_view_rendering          = "GL_NV_stereo_view_rendering"
	GL_NVX_multiview_per_view_attributes = "GL_NVX_multiview_per_view_attributes"

	// AEP
	GL_ANDROID_extension_pack_es31a             = "GL_ANDROID_extension_pack_es31a"
	GL_KHR_blend_equation_advanced              = "GL_KHR_blend_equation_advanced"
	GL_OES_sample_variables                     = "GL_OES_sample_variables"
	GL_OES_shader_image_atomic                  = "GL_OES_shader_image_atomic"
	GL_OES_shader_multisample_interpolation     = "GL_OES_shader_multisample_interpolation"
	GL_OES_texture_storage_multisample_2d_array = "GL_OES_texture_storage_multisample_2d_array"
	GL_EXT_geometry_shader                      = "GL_EXT_geometry_shader"
	GL_EXT_geometry_point_size                  = "GL_EXT_geometry_point_size"
	GL_EXT_gpu_shader5                          = "GL_EXT_gpu_shader5"
	GL_EXT_primitive_bounding_box               = "GL_EXT_primitive_bounding_box"
	GL_EXT_shader_io_blocks                     = "GL_EXT_shader_io_blocks"
	GL_EXT_tessellation_shader                  = "GL_EXT_tessellation_shader"
	GL_EXT_tessellation_point_size              = "GL_EXT_tessellation_point_size"
	GL_EXT_texture_buffer                       = "GL_EXT_texture_buffer"
	GL_EXT_texture_cube_map_array               = "GL_EXT_texture_cube_map_array"

	// OES matching AEP
	GL_OES_geometry_shader         = "GL_OES_geometry_shader"
	GL_OES_geometry_point_size     = "GL_OES_geometry_point_size"
	GL_OES_gpu_shader5             = "GL_OES_gpu_shader5"
	GL_OES_primitive_bounding_box  = "GL_OES_primitive_bounding_box"
	GL_OES_shader_io_blocks        = "GL_OES_shader_io_blocks"
	GL_OES_tessellation_shader     = "GL_OES_tessellation_shader"
	GL_OES_tessellation_point_size = "GL_OES_tessellation_point_size"
	GL_OES_texture_buffer          = "GL_OES_texture_buffer"
	GL_OES_texture_cube_map_array  = "GL_OES_texture_cube_map_array"

	GL_EXT_device_group = "GL_EXT_device_group"
	GL_EXT_multiview    = "GL_EXT_multiview"

	GL_OVR_multiview  = "GL_OVR_multiview"
	GL_OVR_multiview2 = "GL_OVR_multiview2"
)

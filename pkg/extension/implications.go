package extension

// implications is the static umbrella graph. The AEP umbrella fans out
// to its twelve member extensions; geometry and tessellation imply io
// blocks; #include implies cpp-style #line.
var implications = buildImplications()

func buildImplications() *Graph {
	g := NewGraph()

	// GL_ANDROID_extension_pack_es31a covers everything in AEP.
	for _, id := range []string{
		GL_KHR_blend_equation_advanced,
		GL_OES_sample_variables,
		GL_OES_shader_image_atomic,
		GL_OES_shader_multisample_interpolation,
		GL_OES_texture_storage_multisample_2d_array,
		GL_EXT_geometry_shader,
		GL_EXT_gpu_shader5,
		GL_EXT_primitive_bounding_box,
		GL_EXT_shader_io_blocks,
		GL_EXT_tessellation_shader,
		GL_EXT_texture_buffer,
		GL_EXT_texture_cube_map_array,
	} {
		g.AddEdge(GL_ANDROID_extension_pack_es31a, id)
	}

	// geometry and tessellation to io_blocks
	g.AddEdge(GL_EXT_geometry_shader, GL_EXT_shader_io_blocks)
	g.AddEdge(GL_OES_geometry_shader, GL_OES_shader_io_blocks)
	g.AddEdge(GL_EXT_tessellation_shader, GL_EXT_shader_io_blocks)
	g.AddEdge(GL_OES_tessellation_shader, GL_OES_shader_io_blocks)

	g.AddEdge(GL_GOOGLE_include_directive, GL_GOOGLE_cpp_style_line_directive)

	return g
}

// Implications returns the static implication graph. Callers must treat
// it as read-only.
func Implications() *Graph {
	return implications
}

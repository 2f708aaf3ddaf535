package gate

import "github.com/leapstack-labs/shadergate/pkg/profile"

// Target describes what the compile unit is being compiled for. It is
// fixed before parsing begins and controls both target-specific gate
// checks and preamble content.
type Target struct {
	// Spirv is true when SPIR-V is being generated, for either client.
	Spirv bool

	// Vulkan is the Vulkan semantics version in use, or 0 when GLSL is
	// not being compiled for Vulkan (e.g. 100 for VK 1.0).
	Vulkan int

	// OpenGLSpirv is the OpenGL SPIR-V version in use, or 0 when SPIR-V
	// is not being generated under OpenGL semantics.
	OpenGLSpirv int
}

// Config is the immutable compile-unit configuration the gate consults
// on every check.
type Config struct {
	Profile profile.Profile
	Version int
	Stage   profile.Stage
	Target  Target

	// ForwardCompatible turns deprecation warnings into errors.
	ForwardCompatible bool

	// RelaxedErrors downgrades certain missing-extension errors to
	// warnings that permit the feature.
	RelaxedErrors bool

	// SuppressWarnings drops warning-severity output from version and
	// deprecation checks.
	SuppressWarnings bool
}

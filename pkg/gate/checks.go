package gate

import (
	"github.com/leapstack-labs/shadergate/pkg/extension"
	"github.com/leapstack-labs/shadergate/pkg/profile"
	"github.com/leapstack-labs/shadergate/pkg/token"
)

// Composite checks layered on the primitives, for operations whose
// requirements recur across many parser checkpoints.

// FullIntegerCheck gates any operation needing full integer data-type
// support.
func (g *Gate) FullIntegerCheck(pos token.Position, op string) {
	g.ProfileRequires(pos, profile.None, 130, op)
	g.ProfileRequires(pos, profile.ES, 300, op)
}

// DoubleCheck gates any operation needing double data-type support.
func (g *Gate) DoubleCheck(pos token.Position, op string) {
	g.RequireProfile(pos, profile.Core|profile.Compatibility, op)
	g.ProfileRequires(pos, profile.Core, 400, op)
	g.ProfileRequires(pos, profile.Compatibility, 400, op)
}

// Int64Check gates any operation needing 64-bit integer data-type
// support. Built-in symbols carry their own extension tags and skip the
// check.
func (g *Gate) Int64Check(pos token.Position, op string, builtIn bool) {
	if builtIn {
		return
	}
	g.RequireExtensions(pos, "shader int64", extension.GL_ARB_gpu_shader_int64)
	g.RequireProfile(pos, profile.Core|profile.Compatibility, op)
	g.ProfileRequires(pos, profile.Core, 450, op)
	g.ProfileRequires(pos, profile.Compatibility, 450, op)
}

// Int16Check gates any operation needing 16-bit integer data-type
// support.
func (g *Gate) Int16Check(pos token.Position, op string, builtIn bool) {
	if builtIn {
		return
	}
	g.RequireExtensions(pos, "shader int16", extension.GL_AMD_gpu_shader_int16)
	g.RequireProfile(pos, profile.Core|profile.Compatibility, op)
	g.ProfileRequires(pos, profile.Core, 450, op)
	g.ProfileRequires(pos, profile.Compatibility, 450, op)
}

// Float16Check gates any operation needing half-float data-type support.
func (g *Gate) Float16Check(pos token.Position, op string, builtIn bool) {
	if builtIn {
		return
	}
	g.RequireExtensions(pos, "shader half float", extension.GL_AMD_gpu_shader_half_float)
	g.RequireProfile(pos, profile.Core|profile.Compatibility, op)
	g.ProfileRequires(pos, profile.Core, 450, op)
	g.ProfileRequires(pos, profile.Compatibility, 450, op)
}

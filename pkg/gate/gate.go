// Package gate decides whether a language feature is permitted under the
// active profile, version, stage, target, and extension state.
//
// None of the checks return error codes: the presumption is that parsing
// always continues as if the tested feature were enabled, so there is no
// error recovery needed. Each check records its outcome on the
// diagnostic sink and returns.
package gate

import (
	"fmt"

	"github.com/leapstack-labs/shadergate/pkg/diag"
	"github.com/leapstack-labs/shadergate/pkg/extension"
	"github.com/leapstack-labs/shadergate/pkg/profile"
	"github.com/leapstack-labs/shadergate/pkg/token"
)

// Gate is the feature-compatibility gate for one compile unit. It owns
// the unit's extension behavior state, freshly seeded from the registry
// defaults, and is not safe for concurrent use: callers wanting parallel
// compiles create one Gate each.
type Gate struct {
	cfg      Config
	sink     diag.Sink
	behavior map[string]extension.Behavior

	// requested records extensions enabled or required by directive, in
	// first-request order, for downstream build metadata.
	requested    []string
	requestedSet map[string]struct{}
}

// New creates a gate for one compile unit.
func New(cfg Config, sink diag.Sink) *Gate {
	return &Gate{
		cfg:          cfg,
		sink:         sink,
		behavior:     extension.Defaults(),
		requestedSet: make(map[string]struct{}),
	}
}

// Config returns the compile-unit configuration.
func (g *Gate) Config() Config {
	return g.cfg
}

// Behavior returns the current behavior of an extension, or Missing when
// the identifier is not in the registry.
func (g *Gate) Behavior(id string) extension.Behavior {
	b, ok := g.behavior[id]
	if !ok {
		return extension.Missing
	}
	return b
}

// ExtensionTurnedOn reports whether the extension is set to enable,
// require, or warn.
func (g *Gate) ExtensionTurnedOn(id string) bool {
	return g.Behavior(id).TurnedOn()
}

// ExtensionsTurnedOn reports whether any of the extensions is turned on.
func (g *Gate) ExtensionsTurnedOn(ids ...string) bool {
	for _, id := range ids {
		if g.ExtensionTurnedOn(id) {
			return true
		}
	}
	return false
}

// RequestedExtensions returns the extensions enabled or required by
// directive so far, in first-request order.
func (g *Gate) RequestedExtensions() []string {
	out := make([]string, len(g.requested))
	copy(out, g.requested)
	return out
}

func (g *Gate) emit(code diag.Code, sev diag.Severity, pos token.Position, format string, args ...any) {
	g.sink.Emit(diag.Diagnostic{
		Code:     code,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

// RequireProfile diagnoses when the active profile is not in the allowed
// mask. Version and extensions are not consulted; follow with
// ProfileRequires for version/extension gating within the allowed set.
func (g *Gate) RequireProfile(pos token.Position, allowed profile.Profile, feature string) {
	if g.cfg.Profile&allowed == 0 {
		g.emit(diag.CodeProfile, diag.SeverityError, pos,
			"'%s' : not supported with this profile: %s", feature, g.cfg.Profile)
	}
}

// ProfileRequires checks version/extension requirements, but only when
// the active profile is in the allowed mask; otherwise it is a no-op.
//
// The feature is permitted when minVersion is nonzero and the unit's
// version reaches it, or when any listed extension is enabled, required,
// or set to warn (the warn case also records a usage warning). A
// minVersion of 0 means no core version incorporates the feature, so an
// extension is mandatory; with minVersion 0 and no extensions the check
// always diagnoses.
func (g *Gate) ProfileRequires(pos token.Position, allowed profile.Profile, minVersion int, feature string, extensions ...string) {
	if g.cfg.Profile&allowed == 0 {
		return
	}

	okay := minVersion > 0 && g.cfg.Version >= minVersion
	for _, id := range extensions {
		switch g.Behavior(id) {
		case extension.Warn:
			g.warnExtensionUsed(pos, id, feature)
			okay = true
		case extension.Require, extension.Enable:
			okay = true
		}
	}

	if !okay {
		g.emit(diag.CodeVersionOrExtension, diag.SeverityError, pos,
			"'%s' : not supported for this version or the enabled extensions", feature)
	}
}

// RequireStage diagnoses when the active stage is not in the mask. All
// stages supporting a feature must be given in one call.
func (g *Gate) RequireStage(pos token.Position, allowed profile.StageMask, feature string) {
	if !allowed.Has(g.cfg.Stage) {
		g.emit(diag.CodeStage, diag.SeverityError, pos,
			"'%s' : not supported in this stage: %s", feature, g.cfg.Stage)
	}
}

// CheckDeprecated diagnoses use of a feature deprecated at depVersion,
// within the allowed profiles: an error under forward-compatible mode,
// otherwise a warning unless warnings are suppressed.
func (g *Gate) CheckDeprecated(pos token.Position, allowed profile.Profile, depVersion int, feature string) {
	if g.cfg.Profile&allowed == 0 || g.cfg.Version < depVersion {
		return
	}
	if g.cfg.ForwardCompatible {
		g.emit(diag.CodeDeprecated, diag.SeverityError, pos,
			"'%s' : deprecated, may be removed in future release", feature)
	} else if !g.cfg.SuppressWarnings {
		g.emit(diag.CodeDeprecated, diag.SeverityWarning, pos,
			"%s deprecated in version %d; may be removed in future release", feature, depVersion)
	}
}

// RequireNotRemoved diagnoses use of a feature removed at removedVersion,
// within the allowed profiles. The version argument is the first version
// no longer having the feature.
func (g *Gate) RequireNotRemoved(pos token.Position, allowed profile.Profile, removedVersion int, feature string) {
	if g.cfg.Profile&allowed == 0 || g.cfg.Version < removedVersion {
		return
	}
	g.emit(diag.CodeRemovedFeature, diag.SeverityError, pos,
		"'%s' : no longer supported in %s profile; removed in version %d",
		feature, g.cfg.Profile, removedVersion)
}

// extensionsRequested reports whether at least one of the extensions is
// requested, warning as appropriate for warn-behavior extensions. Under
// relaxed errors, a disabled extension is promoted to a warning-permit
// with an explicit enablement notice.
func (g *Gate) extensionsRequested(pos token.Position, feature string, extensions []string) bool {
	for _, id := range extensions {
		if b := g.Behavior(id); b == extension.Enable || b == extension.Require {
			return true
		}
	}

	warned := false
	for _, id := range extensions {
		b := g.Behavior(id)
		if b == extension.Disable && g.cfg.RelaxedErrors {
			g.emit(diag.CodeMissingExtension, diag.SeverityWarning, pos,
				"The following extension must be enabled to use this feature:")
			b = extension.Warn
		}
		if b == extension.Warn {
			g.warnExtensionUsed(pos, id, feature)
			warned = true
		}
	}
	return warned
}

// RequireExtensions is used when there is no profile or version that
// incorporates the feature: it is an error unless one of the extensions
// is requested.
func (g *Gate) RequireExtensions(pos token.Position, feature string, extensions ...string) {
	if g.extensionsRequested(pos, feature, extensions) {
		return
	}

	if len(extensions) == 1 {
		g.emit(diag.CodeMissingExtension, diag.SeverityError, pos,
			"'%s' : required extension not requested: %s", feature, extensions[0])
		return
	}
	g.emit(diag.CodeMissingExtension, diag.SeverityError, pos,
		"'%s' : required extension not requested: Possible extensions include:", feature)
	for _, id := range extensions {
		g.emit(diag.CodeMissingExtension, diag.SeverityInfo, pos, "%s", id)
	}
}

func (g *Gate) warnExtensionUsed(pos token.Position, id, feature string) {
	g.emit(diag.CodeExtensionUsed, diag.SeverityWarning, pos,
		"extension %s is being used for %s", id, feature)
}

// SpvRemoved diagnoses an operation removed because SPIR-V is being
// generated.
func (g *Gate) SpvRemoved(pos token.Position, op string) {
	if g.cfg.Target.Spirv {
		g.emit(diag.CodeRemovedUnderSpv, diag.SeverityError, pos,
			"'%s' : not allowed when generating SPIR-V", op)
	}
}

// VulkanRemoved diagnoses an operation removed because Vulkan SPIR-V is
// being generated.
func (g *Gate) VulkanRemoved(pos token.Position, op string) {
	if g.cfg.Target.Vulkan >= 100 {
		g.emit(diag.CodeRemovedUnderVulkan, diag.SeverityError, pos,
			"'%s' : not allowed when using GLSL for Vulkan", op)
	}
}

// RequireVulkan diagnoses an operation that requires Vulkan semantics.
func (g *Gate) RequireVulkan(pos token.Position, op string) {
	if g.cfg.Target.Vulkan == 0 {
		g.emit(diag.CodeRequiresVulkan, diag.SeverityError, pos,
			"'%s' : only allowed when using GLSL for Vulkan", op)
	}
}

// RequireSpv diagnoses an operation that requires SPIR-V generation.
func (g *Gate) RequireSpv(pos token.Position, op string) {
	if !g.cfg.Target.Spirv {
		g.emit(diag.CodeRequiresSpv, diag.SeverityError, pos,
			"'%s' : only allowed when generating SPIR-V", op)
	}
}

// Unimplemented records that the feature is recognized but not yet
// implemented by this front end.
func (g *Gate) Unimplemented(pos token.Position, feature string) {
	g.emit(diag.CodeNotImplemented, diag.SeverityError, pos,
		"'%s' : feature not yet implemented", feature)
}

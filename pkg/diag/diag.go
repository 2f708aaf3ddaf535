// Package diag defines the diagnostic model for the feature gate.
//
// Every gate check records its outcome through a Sink and returns
// normally; nothing in this package carries control flow. The caller
// that drives compilation decides what accumulated diagnostics mean.
package diag

import (
	"fmt"

	"github.com/leapstack-labs/shadergate/pkg/token"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Code identifies which gate check produced a diagnostic.
type Code string

// Diagnostic codes, one per check outcome.
const (
	CodeProfile              Code = "profile"
	CodeVersionOrExtension   Code = "version-or-extension"
	CodeStage                Code = "stage"
	CodeDeprecated           Code = "deprecated"
	CodeRemovedFeature       Code = "removed-feature"
	CodeMissingExtension     Code = "missing-extension"
	CodeUnsupportedExtension Code = "unsupported-extension"
	CodePartialSupport       Code = "partial-support"
	CodeExtensionUsed        Code = "extension-used"
	CodeInvalidBehavior      Code = "invalid-behavior"
	CodeInvalidAllBehavior   Code = "invalid-all-behavior"
	CodeNotImplemented       Code = "not-implemented"
	CodeRequiresVulkan       Code = "requires-vulkan"
	CodeRequiresSpv          Code = "requires-spv"
	CodeRemovedUnderSpv      Code = "removed-under-spv"
	CodeRemovedUnderVulkan   Code = "removed-under-vulkan"
)

// Diagnostic is one recorded finding.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Pos      token.Position
}

// String formats the diagnostic for plain-text output.
func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Pos, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Sink receives diagnostics as the gate produces them. Implementations
// own formatting, storage, and exit-code decisions.
type Sink interface {
	Emit(d Diagnostic)
}

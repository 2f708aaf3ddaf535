// Package profile defines the language profiles and shader stages a
// compile unit can target. Profiles are bit-masks so that checks can
// accept sets of allowed profiles, including complements ("all but ES").
package profile

import "strings"

// Profile is a bit-mask over the language profiles. A compile unit has
// exactly one active profile bit; checks accept any combination.
type Profile uint8

// Language profiles.
const (
	// None is the desktop mode before profiles existed (#version < 150
	// with no profile keyword).
	None Profile = 1 << iota
	Core
	Compatibility
	ES
)

// All is the mask of every profile.
const All = None | Core | Compatibility | ES

// Desktop is every profile except ES.
const Desktop = All &^ ES

// String returns the display name of a single-bit profile, used verbatim
// in diagnostics.
func (p Profile) String() string {
	switch p {
	case None:
		return "none"
	case Core:
		return "core"
	case Compatibility:
		return "compatibility"
	case ES:
		return "es"
	default:
		return "unknown"
	}
}

// IsValid reports whether p is exactly one profile bit.
func (p Profile) IsValid() bool {
	return p == None || p == Core || p == Compatibility || p == ES
}

// Parse maps a profile name to its bit. The empty string maps to None,
// matching a #version line with no profile keyword.
func Parse(name string) (Profile, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return None, true
	case "core":
		return Core, true
	case "compatibility":
		return Compatibility, true
	case "es":
		return ES, true
	default:
		return 0, false
	}
}

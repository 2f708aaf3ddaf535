// Package extension holds the registry of known language extensions,
// their default behavior states, and the implication graph between
// umbrella extensions and the features they drag in.
//
// The registry is fixed at build time; per-compile-unit behavior state
// lives in the gate, seeded from Defaults.
package extension

// Behavior is the activation state of an extension.
type Behavior int

// Behavior states. Only Disable through Require are ever stored in a
// behavior table; Missing is a query result meaning the identifier is
// not in the registry at all.
const (
	Disable Behavior = iota
	DisablePartial
	Warn
	Enable
	Require
	Missing
)

// String returns the directive-vocabulary name of the behavior.
func (b Behavior) String() string {
	switch b {
	case Disable:
		return "disable"
	case DisablePartial:
		return "disable (partial)"
	case Warn:
		return "warn"
	case Enable:
		return "enable"
	case Require:
		return "require"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// TurnedOn reports whether the behavior permits use of the extension's
// features. Warn permits with a usage warning.
func (b Behavior) TurnedOn() bool {
	return b == Enable || b == Require || b == Warn
}

// ParseBehavior maps a directive behavior token to a Behavior. Only the
// four literal directive tokens are recognized.
func ParseBehavior(tok string) (Behavior, bool) {
	switch tok {
	case "require":
		return Require, true
	case "enable":
		return Enable, true
	case "disable":
		return Disable, true
	case "warn":
		return Warn, true
	default:
		return 0, false
	}
}

package profile

import "strings"

// Stage identifies a shader pipeline stage. A compile unit has exactly
// one active stage.
type Stage int

// Pipeline stages, in pipeline order.
const (
	Vertex Stage = iota
	TessControl
	TessEvaluation
	Geometry
	Fragment
	Compute

	stageCount
)

// StageMask is a bit-set of stages accepted by a check.
type StageMask uint32

// AllStages is the mask of every stage.
const AllStages = StageMask(1<<stageCount) - 1

// Mask returns the single-stage mask for s.
func (s Stage) Mask() StageMask {
	return 1 << s
}

// Has reports whether the mask contains the given stage.
func (m StageMask) Has(s Stage) bool {
	return m&s.Mask() != 0
}

// String returns the display name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case TessControl:
		return "tessellation control"
	case TessEvaluation:
		return "tessellation evaluation"
	case Geometry:
		return "geometry"
	case Fragment:
		return "fragment"
	case Compute:
		return "compute"
	default:
		return "unknown stage"
	}
}

// ParseStage maps a stage name to its Stage. Both the long form
// ("tess-control") and the common short form ("tesc") are accepted.
func ParseStage(name string) (Stage, bool) {
	switch strings.ToLower(name) {
	case "vertex", "vert":
		return Vertex, true
	case "tess-control", "tesscontrol", "tesc":
		return TessControl, true
	case "tess-evaluation", "tessevaluation", "tese":
		return TessEvaluation, true
	case "geometry", "geom":
		return Geometry, true
	case "fragment", "frag":
		return Fragment, true
	case "compute", "comp":
		return Compute, true
	default:
		return 0, false
	}
}

// Stages returns every stage in pipeline order.
func Stages() []Stage {
	return []Stage{Vertex, TessControl, TessEvaluation, Geometry, Fragment, Compute}
}

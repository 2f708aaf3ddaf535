package gate

import (
	"github.com/leapstack-labs/shadergate/pkg/diag"
	"github.com/leapstack-labs/shadergate/pkg/extension"
	"github.com/leapstack-labs/shadergate/pkg/token"
)

// AllExtensions is the special directive identifier that addresses every
// registered extension at once.
const AllExtensions = "all"

// ApplyDirective processes one "#extension <id> : <behavior>" directive:
// it validates the behavior token, updates the unit's behavior state,
// and propagates umbrella directives through the implication graph.
// Invalid directives are diagnosed and dropped; the compile continues.
func (g *Gate) ApplyDirective(pos token.Position, id, behaviorToken string) {
	b, ok := extension.ParseBehavior(behaviorToken)
	if !ok {
		g.emit(diag.CodeInvalidBehavior, diag.SeverityError, pos,
			"'#extension' : behavior not supported: %s", behaviorToken)
		return
	}
	g.applyBehavior(pos, id, b)
}

func (g *Gate) applyBehavior(pos token.Position, id string, b extension.Behavior) {
	if id == AllExtensions {
		// 'all' touches every slot directly, so the implication graph
		// is not walked for it.
		if b == extension.Require || b == extension.Enable {
			g.emit(diag.CodeInvalidAllBehavior, diag.SeverityError, pos,
				"'#extension' : extension 'all' cannot have 'require' or 'enable' behavior")
			return
		}
		for ext := range g.behavior {
			g.behavior[ext] = b
		}
		return
	}

	if !g.setBehavior(pos, id, b) {
		return
	}

	// Propagate to implicitly modified extensions. The graph is a small
	// DAG; the seen set keeps redundant edges idempotent.
	work := extension.Implications().Implied(id)
	seen := map[string]struct{}{id: {}}
	for len(work) > 0 {
		next := work[0]
		work = work[1:]
		if _, done := seen[next]; done {
			continue
		}
		seen[next] = struct{}{}
		if g.setBehavior(pos, next, b) {
			work = append(work, extension.Implications().Implied(next)...)
		}
	}
}

// setBehavior stores the new behavior of a single ordinary extension.
// Returns false, with a diagnostic, when the identifier is unknown; in
// that case no state changes and nothing propagates.
func (g *Gate) setBehavior(pos token.Position, id string, b extension.Behavior) bool {
	cur, ok := g.behavior[id]
	if !ok {
		sev := diag.SeverityWarning
		if b == extension.Require {
			sev = diag.SeverityError
		}
		g.emit(diag.CodeUnsupportedExtension, sev, pos,
			"'#extension' : extension not supported: %s", id)
		return false
	}

	if cur == extension.DisablePartial {
		g.emit(diag.CodePartialSupport, diag.SeverityWarning, pos,
			"'#extension' : extension is only partially supported: %s", id)
	}
	if b == extension.Enable || b == extension.Require {
		g.addRequested(id)
	}
	g.behavior[id] = b
	return true
}

func (g *Gate) addRequested(id string) {
	if _, ok := g.requestedSet[id]; ok {
		return
	}
	g.requestedSet[id] = struct{}{}
	g.requested = append(g.requested, id)
}

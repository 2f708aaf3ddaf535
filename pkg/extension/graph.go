package extension

// Graph is a directed graph of implication edges: enabling a trigger
// extension implies the same directive applied to each implied
// extension. Small and acyclic in practice; Closure tolerates redundant
// edges and applies idempotently.
type Graph struct {
	nodes map[string]struct{}
	edges map[string][]string // trigger -> implied, in insertion order
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[string][]string),
	}
}

// AddEdge adds a trigger -> implied edge. Duplicate edges are ignored.
func (g *Graph) AddEdge(trigger, implied string) {
	g.nodes[trigger] = struct{}{}
	g.nodes[implied] = struct{}{}
	for _, existing := range g.edges[trigger] {
		if existing == implied {
			return
		}
	}
	g.edges[trigger] = append(g.edges[trigger], implied)
}

// Implied returns the directly implied extensions of a trigger, in edge
// insertion order.
func (g *Graph) Implied(trigger string) []string {
	out := make([]string, len(g.edges[trigger]))
	copy(out, g.edges[trigger])
	return out
}

// Closure returns the transitive implication set of a trigger, excluding
// the trigger itself, in breadth-first edge order.
func (g *Graph) Closure(trigger string) []string {
	seen := map[string]struct{}{trigger: {}}
	var out []string
	work := g.Implied(trigger)
	for len(work) > 0 {
		id := work[0]
		work = work[1:]
		if _, done := seen[id]; done {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		work = append(work, g.edges[id]...)
	}
	return out
}

// HasCycle reports whether any implication chain loops back on itself.
// The static graph is expected to be acyclic; this exists so tests can
// audit that expectation.
func (g *Graph) HasCycle() bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g.nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case visiting:
			return true
		case done:
			return false
		}
		state[id] = visiting
		for _, next := range g.edges[id] {
			if visit(next) {
				return true
			}
		}
		state[id] = done
		return false
	}

	for id := range g.nodes {
		if visit(id) {
			return true
		}
	}
	return false
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, implied := range g.edges {
		n += len(implied)
	}
	return n
}

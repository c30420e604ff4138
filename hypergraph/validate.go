package hypergraph

import "fmt"

// CheckIntegrity verifies that every handle appearing in an edge list or a
// boundary list refers to an existing vertex. A failure indicates a
// programmer error or a corrupt input file, wrapped as ErrMalformed.
func (g *Graph) CheckIntegrity() error {
	for e, ed := range g.edata {
		for _, v := range ed.S {
			if _, ok := g.vdata[v]; !ok {
				return fmt.Errorf("%w: edge %d sources missing vertex %d", ErrMalformed, e, v)
			}
		}
		for _, v := range ed.T {
			if _, ok := g.vdata[v]; !ok {
				return fmt.Errorf("%w: edge %d targets missing vertex %d", ErrMalformed, e, v)
			}
		}
	}
	for _, v := range g.inputs {
		if _, ok := g.vdata[v]; !ok {
			return fmt.Errorf("%w: inputs reference missing vertex %d", ErrMalformed, v)
		}
	}
	for _, v := range g.outputs {
		if _, ok := g.vdata[v]; !ok {
			return fmt.Errorf("%w: outputs reference missing vertex %d", ErrMalformed, v)
		}
	}
	return nil
}

// wireDegrees returns, per vertex, the total in-wire count (occurrences as
// an edge target plus occurrences in the graph inputs) and out-wire count
// (occurrences as an edge source plus occurrences in the graph outputs),
// counted with multiplicity.
func (g *Graph) wireDegrees() (in, out map[VertexID]int) {
	in = make(map[VertexID]int, len(g.vdata))
	out = make(map[VertexID]int, len(g.vdata))
	for v := range g.vdata {
		in[v], out[v] = 0, 0
	}
	for _, ed := range g.edata {
		for _, v := range ed.S {
			out[v]++
		}
		for _, v := range ed.T {
			in[v]++
		}
	}
	for _, v := range g.inputs {
		in[v]++
	}
	for _, v := range g.outputs {
		out[v]++
	}
	return in, out
}

// CheckMonogamy verifies the monogamous wire discipline: every vertex is
// fed by exactly one wire (a single edge-target occurrence or a single
// input-boundary occurrence) and feeds exactly one wire (a single
// edge-source occurrence or a single output-boundary occurrence).
// Violations are reported wrapped as ErrNotMonogamous.
func (g *Graph) CheckMonogamy() error {
	in, out := g.wireDegrees()
	for _, v := range g.Vertices() {
		if in[v] != 1 {
			return fmt.Errorf("%w: vertex %d has %d in-wires", ErrNotMonogamous, v, in[v])
		}
		if out[v] != 1 {
			return fmt.Errorf("%w: vertex %d has %d out-wires", ErrNotMonogamous, v, out[v])
		}
	}
	return nil
}

// IsMonogamous reports whether CheckMonogamy passes.
func (g *Graph) IsMonogamous() bool { return g.CheckMonogamy() == nil }

// CheckAcyclic verifies that the precedence relation on edges — e1 precedes
// e2 when some target of e1 is a source of e2 — has no directed cycle.
// Uses Kahn's algorithm over edge handles; a leftover edge means a cycle,
// reported wrapped as ErrCyclic.
func (g *Graph) CheckAcyclic() error {
	// 1. Count, for every edge, how many distinct predecessor edges it has.
	indeg := make(map[EdgeID]int, len(g.edata))
	for e := range g.edata {
		indeg[e] = len(g.EdgePredecessors(e))
	}

	// 2. Repeatedly retire edges with no unretired predecessors.
	queue := make([]EdgeID, 0, len(indeg))
	for e, d := range indeg {
		if d == 0 {
			queue = append(queue, e)
		}
	}
	retired := 0
	for len(queue) > 0 {
		e := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		retired++
		for _, s := range g.EdgeSuccessors(e) {
			indeg[s]--
			if indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}

	if retired != len(g.edata) {
		return fmt.Errorf("%w: %d edges lie on directed cycles", ErrCyclic, len(g.edata)-retired)
	}
	return nil
}

// IsAcyclic reports whether CheckAcyclic passes.
func (g *Graph) IsAcyclic() bool { return g.CheckAcyclic() == nil }

// Validate runs the full invariant suite required of well-formed diagrams:
// referential integrity, monogamy, and acyclicity.
func (g *Graph) Validate() error {
	if err := g.CheckIntegrity(); err != nil {
		return err
	}
	if err := g.CheckMonogamy(); err != nil {
		return err
	}
	return g.CheckAcyclic()
}

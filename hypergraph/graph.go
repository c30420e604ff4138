package hypergraph

import (
	"fmt"
	"sort"
)

// AddVertex allocates a fresh vertex carrying the given label and returns
// its handle. Use VertexAt to set drawing coordinates and WithVertexID to
// force a handle (I/O reconstruction).
func (g *Graph) AddVertex(value string, opts ...VertexOption) VertexID {
	var cfg vertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	v := g.vindex
	if cfg.hasID {
		v = cfg.id
		if cfg.id >= g.vindex {
			g.vindex = cfg.id
		}
	}
	g.vindex++

	g.vdata[v] = &VData{
		X: cfg.x, Y: cfg.y,
		Value: value,
		infer: cfg.infer,

		inEdges:    make(map[EdgeID]struct{}),
		outEdges:   make(map[EdgeID]struct{}),
		inIndices:  make(map[int]struct{}),
		outIndices: make(map[int]struct{}),
	}
	return v
}

// AddEdge allocates a fresh hyperedge from sources to targets and records
// both-sided incidence. Every handle in sources and targets must already be
// present in the graph; otherwise ErrVertexNotFound is returned.
func (g *Graph) AddEdge(value string, sources, targets []VertexID, opts ...EdgeOption) (EdgeID, error) {
	for _, v := range sources {
		if _, ok := g.vdata[v]; !ok {
			return 0, fmt.Errorf("%w: edge source %d", ErrVertexNotFound, v)
		}
	}
	for _, v := range targets {
		if _, ok := g.vdata[v]; !ok {
			return 0, fmt.Errorf("%w: edge target %d", ErrVertexNotFound, v)
		}
	}

	cfg := edgeConfig{hyper: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := g.eindex
	if cfg.hasID {
		e = cfg.id
		if cfg.id >= g.eindex {
			g.eindex = cfg.id
		}
	}
	g.eindex++

	g.edata[e] = &EData{
		S: append([]VertexID(nil), sources...),
		T: append([]VertexID(nil), targets...),
		X: cfg.x, Y: cfg.y,
		Value: value,
		Hyper: cfg.hyper,
	}
	for _, v := range sources {
		g.vdata[v].outEdges[e] = struct{}{}
	}
	for _, v := range targets {
		g.vdata[v].inEdges[e] = struct{}{}
	}
	return e, nil
}

// mustAddEdge adds an edge whose endpoints are known to exist. A failure
// here is a programmer error, not a user error.
func (g *Graph) mustAddEdge(value string, sources, targets []VertexID, opts ...EdgeOption) EdgeID {
	e, err := g.AddEdge(value, sources, targets, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// RemoveVertex deletes vertex v. Occurrences of v in the source/target list
// of any adjacent edge and in the boundary lists are dropped. Surviving
// handles are unaffected.
func (g *Graph) RemoveVertex(v VertexID) error {
	vd, ok := g.vdata[v]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	for e := range vd.inEdges {
		ed := g.edata[e]
		ed.T = dropVertex(ed.T, v)
	}
	for e := range vd.outEdges {
		ed := g.edata[e]
		ed.S = dropVertex(ed.S, v)
	}
	if len(vd.inIndices) > 0 {
		g.setInputs(dropVertex(g.inputs, v))
	}
	if len(vd.outIndices) > 0 {
		g.setOutputs(dropVertex(g.outputs, v))
	}
	delete(g.vdata, v)
	return nil
}

// RemoveEdge deletes edge e and cleans the incidence sets of its endpoints.
func (g *Graph) RemoveEdge(e EdgeID) error {
	ed, ok := g.edata[e]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}
	for _, v := range ed.S {
		delete(g.vdata[v].outEdges, e)
	}
	for _, v := range ed.T {
		delete(g.vdata[v].inEdges, e)
	}
	delete(g.edata, e)
	return nil
}

func dropVertex(vs []VertexID, v VertexID) []VertexID {
	out := vs[:0]
	for _, w := range vs {
		if w != v {
			out = append(out, w)
		}
	}
	return out
}

// SetInputs replaces the input boundary. Every handle must exist.
func (g *Graph) SetInputs(inputs []VertexID) error {
	if err := g.checkHandles(inputs); err != nil {
		return err
	}
	g.setInputs(append([]VertexID(nil), inputs...))
	return nil
}

// SetOutputs replaces the output boundary. Every handle must exist.
func (g *Graph) SetOutputs(outputs []VertexID) error {
	if err := g.checkHandles(outputs); err != nil {
		return err
	}
	g.setOutputs(append([]VertexID(nil), outputs...))
	return nil
}

// AddInputs appends to the input boundary. Every handle must exist.
func (g *Graph) AddInputs(inputs []VertexID) error {
	if err := g.checkHandles(inputs); err != nil {
		return err
	}
	i := len(g.inputs)
	g.inputs = append(g.inputs, inputs...)
	for ; i < len(g.inputs); i++ {
		g.vdata[g.inputs[i]].inIndices[i] = struct{}{}
	}
	return nil
}

// AddOutputs appends to the output boundary. Every handle must exist.
func (g *Graph) AddOutputs(outputs []VertexID) error {
	if err := g.checkHandles(outputs); err != nil {
		return err
	}
	i := len(g.outputs)
	g.outputs = append(g.outputs, outputs...)
	for ; i < len(g.outputs); i++ {
		g.vdata[g.outputs[i]].outIndices[i] = struct{}{}
	}
	return nil
}

func (g *Graph) checkHandles(vs []VertexID) error {
	for _, v := range vs {
		if _, ok := g.vdata[v]; !ok {
			return fmt.Errorf("%w: boundary vertex %d", ErrVertexNotFound, v)
		}
	}
	return nil
}

// setInputs installs a pre-validated input list and re-registers the
// boundary indices on every vertex.
func (g *Graph) setInputs(inputs []VertexID) {
	g.inputs = inputs
	for _, vd := range g.vdata {
		clear(vd.inIndices)
	}
	for i, v := range g.inputs {
		g.vdata[v].inIndices[i] = struct{}{}
	}
}

func (g *Graph) setOutputs(outputs []VertexID) {
	g.outputs = outputs
	for _, vd := range g.vdata {
		clear(vd.outIndices)
	}
	for i, v := range g.outputs {
		g.vdata[v].outIndices[i] = struct{}{}
	}
}

// Inputs returns a copy of the ordered input boundary.
func (g *Graph) Inputs() []VertexID { return append([]VertexID(nil), g.inputs...) }

// Outputs returns a copy of the ordered output boundary.
func (g *Graph) Outputs() []VertexID { return append([]VertexID(nil), g.outputs...) }

// Arity returns (len(inputs), len(outputs)), the morphism arity of the graph.
func (g *Graph) Arity() (int, int) { return len(g.inputs), len(g.outputs) }

// Domain returns the ordered labels of the input boundary.
func (g *Graph) Domain() []string {
	dom := make([]string, len(g.inputs))
	for i, v := range g.inputs {
		dom[i] = g.vdata[v].Value
	}
	return dom
}

// Codomain returns the ordered labels of the output boundary.
func (g *Graph) Codomain() []string {
	cod := make([]string, len(g.outputs))
	for i, v := range g.outputs {
		cod[i] = g.vdata[v].Value
	}
	return cod
}

// Vertex returns the data of vertex v, or false if the handle is absent.
// The pointer aliases graph-owned state: callers may adjust the cosmetic
// fields but must not touch incidence.
func (g *Graph) Vertex(v VertexID) (*VData, bool) {
	vd, ok := g.vdata[v]
	return vd, ok
}

// Edge returns the data of edge e, or false if the handle is absent.
func (g *Graph) Edge(e EdgeID) (*EData, bool) {
	ed, ok := g.edata[e]
	return ed, ok
}

// Vertices returns all vertex handles sorted ascending.
func (g *Graph) Vertices() []VertexID {
	vs := make([]VertexID, 0, len(g.vdata))
	for v := range g.vdata {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Edges returns all edge handles sorted ascending.
func (g *Graph) Edges() []EdgeID {
	es := make([]EdgeID, 0, len(g.edata))
	for e := range g.edata {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	return es
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vdata) }

// NumEdges returns the number of hyperedges.
func (g *Graph) NumEdges() int { return len(g.edata) }

// Source returns a copy of the ordered source list of edge e.
func (g *Graph) Source(e EdgeID) []VertexID {
	return append([]VertexID(nil), g.edata[e].S...)
}

// Target returns a copy of the ordered target list of edge e.
func (g *Graph) Target(e EdgeID) []VertexID {
	return append([]VertexID(nil), g.edata[e].T...)
}

// InEdges returns the handles of edges for which v is a target, sorted
// ascending. These are the predecessor edges of v.
func (g *Graph) InEdges(v VertexID) []EdgeID {
	return sortedEdgeSet(g.vdata[v].inEdges)
}

// OutEdges returns the handles of edges for which v is a source, sorted
// ascending. These are the successor edges of v.
func (g *Graph) OutEdges(v VertexID) []EdgeID {
	return sortedEdgeSet(g.vdata[v].outEdges)
}

// InDegree returns the number of distinct edges targeting v.
func (g *Graph) InDegree(v VertexID) int { return len(g.vdata[v].inEdges) }

// OutDegree returns the number of distinct edges sourced at v.
func (g *Graph) OutDegree(v VertexID) int { return len(g.vdata[v].outEdges) }

func sortedEdgeSet(set map[EdgeID]struct{}) []EdgeID {
	es := make([]EdgeID, 0, len(set))
	for e := range set {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	return es
}

// IsInput reports whether v occurs in the input boundary.
func (g *Graph) IsInput(v VertexID) bool {
	vd, ok := g.vdata[v]
	return ok && len(vd.inIndices) > 0
}

// IsOutput reports whether v occurs in the output boundary.
func (g *Graph) IsOutput(v VertexID) bool {
	vd, ok := g.vdata[v]
	return ok && len(vd.outIndices) > 0
}

// IsBoundary reports whether v occurs in either boundary list.
func (g *Graph) IsBoundary(v VertexID) bool {
	return g.IsInput(v) || g.IsOutput(v)
}

// EdgePredecessors returns the edges reachable one hop upstream of e: every
// edge having one of e's sources among its targets. Sorted ascending.
func (g *Graph) EdgePredecessors(e EdgeID) []EdgeID {
	set := make(map[EdgeID]struct{})
	for _, v := range g.edata[e].S {
		for p := range g.vdata[v].inEdges {
			set[p] = struct{}{}
		}
	}
	return sortedEdgeSet(set)
}

// EdgeSuccessors returns the edges reachable one hop downstream of e: every
// edge having one of e's targets among its sources. Sorted ascending.
func (g *Graph) EdgeSuccessors(e EdgeID) []EdgeID {
	set := make(map[EdgeID]struct{})
	for _, v := range g.edata[e].T {
		for s := range g.vdata[v].outEdges {
			set[s] = struct{}{}
		}
	}
	return sortedEdgeSet(set)
}

// Successors returns every vertex lying on a directed path strictly
// downstream of any vertex in vs, sorted ascending.
func (g *Graph) Successors(vs ...VertexID) []VertexID {
	set := g.successorSet(vs)
	out := make([]VertexID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// successorSet is the closure used by Successors and by convexity checking.
func (g *Graph) successorSet(vs []VertexID) map[VertexID]struct{} {
	succ := make(map[VertexID]struct{})
	stack := append([]VertexID(nil), vs...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for e := range g.vdata[v].outEdges {
			for _, w := range g.edata[e].T {
				if _, seen := succ[w]; !seen {
					succ[w] = struct{}{}
					stack = append(stack, w)
				}
			}
		}
	}
	return succ
}

// SuccessorSet returns the downstream vertex closure of vs as a set.
func (g *Graph) SuccessorSet(vs []VertexID) map[VertexID]struct{} {
	return g.successorSet(vs)
}

// MergeVertices forms the quotient of the graph identifying w with v.
// Afterwards the merged vertex answers to handle v; every occurrence of w in
// an edge list or a boundary list is rewritten to v and w is removed.
func (g *Graph) MergeVertices(v, w VertexID) error {
	vd, ok := g.vdata[v]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	wd, ok := g.vdata[w]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, w)
	}

	// Where w occurs as an edge target, substitute v.
	for e := range wd.inEdges {
		ed := g.edata[e]
		ed.T = substVertex(ed.T, w, v)
		vd.inEdges[e] = struct{}{}
	}
	// Where w occurs as an edge source, substitute v.
	for e := range wd.outEdges {
		ed := g.edata[e]
		ed.S = substVertex(ed.S, w, v)
		vd.outEdges[e] = struct{}{}
	}
	// Substitute v on both boundaries.
	g.setInputs(substVertex(g.inputs, w, v))
	g.setOutputs(substVertex(g.outputs, w, v))

	// w is now unreferenced.
	clear(wd.inEdges)
	clear(wd.outEdges)
	delete(g.vdata, w)
	return nil
}

func substVertex(vs []VertexID, from, to VertexID) []VertexID {
	for i, v := range vs {
		if v == from {
			vs[i] = to
		}
	}
	return vs
}

// InsertIdentityAfter splits the wire at vertex v by inserting an identity
// hyperedge. A fresh vertex w takes over v's role as the source of every
// adjacent edge and every occurrence of v in the outputs; the new edge runs
// v -> w (or w -> v when reverse is set, which can be used to break a
// directed cycle into a cap and cup). Returns the new edge handle.
func (g *Graph) InsertIdentityAfter(v VertexID, reverse bool) (EdgeID, error) {
	vd, ok := g.vdata[v]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	w := g.AddVertex(vd.Value, VertexAt(vd.X+3, vd.Y))
	g.vdata[w].infer = vd.infer
	wd := g.vdata[w]

	g.setOutputs(substVertex(g.outputs, v, w))
	for e := range vd.outEdges {
		ed := g.edata[e]
		ed.S = substVertex(ed.S, v, w)
		wd.outEdges[e] = struct{}{}
	}
	clear(vd.outEdges)

	s, t := []VertexID{v}, []VertexID{w}
	if reverse {
		s, t = t, s
	}
	return g.mustAddEdge("id", s, t, EdgeAt(vd.X+1.5, vd.Y)), nil
}

// Copy returns a deep copy of the graph. Handles are preserved, so a match
// computed against the original remains meaningful for the copy.
func (g *Graph) Copy() *Graph {
	h := NewGraph()
	h.vindex, h.eindex = g.vindex, g.eindex
	for v, vd := range g.vdata {
		nd := &VData{
			X: vd.X, Y: vd.Y,
			Value: vd.Value,
			infer: vd.infer,

			inEdges:    make(map[EdgeID]struct{}, len(vd.inEdges)),
			outEdges:   make(map[EdgeID]struct{}, len(vd.outEdges)),
			inIndices:  make(map[int]struct{}, len(vd.inIndices)),
			outIndices: make(map[int]struct{}, len(vd.outIndices)),
		}
		for e := range vd.inEdges {
			nd.inEdges[e] = struct{}{}
		}
		for e := range vd.outEdges {
			nd.outEdges[e] = struct{}{}
		}
		for i := range vd.inIndices {
			nd.inIndices[i] = struct{}{}
		}
		for i := range vd.outIndices {
			nd.outIndices[i] = struct{}{}
		}
		h.vdata[v] = nd
	}
	for e, ed := range g.edata {
		h.edata[e] = &EData{
			S: append([]VertexID(nil), ed.S...),
			T: append([]VertexID(nil), ed.T...),
			X: ed.X, Y: ed.Y,
			Value: ed.Value,
			Hyper: ed.Hyper,
		}
	}
	h.inputs = append([]VertexID(nil), g.inputs...)
	h.outputs = append([]VertexID(nil), g.outputs...)
	return h
}

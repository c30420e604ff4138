package match

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/cospan/hypergraph"
)

// Match is a (possibly partial) embedding of Dom into Cod. VMap and EMap
// are owned by the match; Dom and Cod are borrowed and must outlive it.
type Match struct {
	Dom *hypergraph.Graph
	Cod *hypergraph.Graph

	VMap map[hypergraph.VertexID]hypergraph.VertexID
	EMap map[hypergraph.EdgeID]hypergraph.EdgeID

	vimg map[hypergraph.VertexID]struct{}
	eimg map[hypergraph.EdgeID]struct{}

	log *zap.Logger
}

// New returns an empty match between dom and cod.
func New(dom, cod *hypergraph.Graph) *Match {
	return &Match{
		Dom:  dom,
		Cod:  cod,
		VMap: make(map[hypergraph.VertexID]hypergraph.VertexID),
		EMap: make(map[hypergraph.EdgeID]hypergraph.EdgeID),
		vimg: make(map[hypergraph.VertexID]struct{}),
		eimg: make(map[hypergraph.EdgeID]struct{}),
		log:  zap.NewNop(),
	}
}

// Copy returns an independent copy sharing the underlying graphs.
func (m *Match) Copy() *Match {
	c := &Match{
		Dom:  m.Dom,
		Cod:  m.Cod,
		VMap: make(map[hypergraph.VertexID]hypergraph.VertexID, len(m.VMap)),
		EMap: make(map[hypergraph.EdgeID]hypergraph.EdgeID, len(m.EMap)),
		vimg: make(map[hypergraph.VertexID]struct{}, len(m.vimg)),
		eimg: make(map[hypergraph.EdgeID]struct{}, len(m.eimg)),
		log:  m.log,
	}
	for v, w := range m.VMap {
		c.VMap[v] = w
	}
	for e, f := range m.EMap {
		c.EMap[e] = f
	}
	for v := range m.vimg {
		c.vimg[v] = struct{}{}
	}
	for e := range m.eimg {
		c.eimg[e] = struct{}{}
	}
	return c
}

// AssignVertex records v -> w without any matching checks. Used by the
// rewriter to build the RHS embedding it already knows to be valid.
func (m *Match) AssignVertex(v, w hypergraph.VertexID) {
	m.VMap[v] = w
	m.vimg[w] = struct{}{}
}

// AssignEdge records e -> f without any matching checks.
func (m *Match) AssignEdge(e, f hypergraph.EdgeID) {
	m.EMap[e] = f
	m.eimg[f] = struct{}{}
}

// String renders the two handle maps in ascending key order.
func (m *Match) String() string {
	return fmt.Sprintf("vmap: %v, emap: %v", m.VMap, m.EMap)
}

// tryAddVertex extends the match with v -> codV, returning false (with the
// match left dirty, callers work on copies) on any violation: label
// mismatch, boundary image of an interior vertex, interior non-injectivity,
// or an interior degree mismatch that could never satisfy the gluing
// condition.
func (m *Match) tryAddVertex(v, codV hypergraph.VertexID) bool {
	vd, _ := m.Dom.Vertex(v)
	cd, ok := m.Cod.Vertex(codV)
	if !ok || vd.Value != cd.Value {
		m.log.Debug("vertex rejected: label mismatch",
			zap.Int("v", int(v)), zap.Int("codV", int(codV)))
		return false
	}

	// An interior vertex of the pattern cannot land on the codomain
	// boundary: its whole neighborhood must be deleted by a rewrite.
	if m.Cod.IsBoundary(codV) && !m.Dom.IsBoundary(v) {
		m.log.Debug("vertex rejected: interior onto boundary",
			zap.Int("v", int(v)), zap.Int("codV", int(codV)))
		return false
	}

	// Non-injective overlaps are allowed only between boundary vertices.
	if _, hit := m.vimg[codV]; hit {
		if !m.Dom.IsBoundary(v) {
			m.log.Debug("vertex rejected: non-injective on interior", zap.Int("v", int(v)))
			return false
		}
		for dv, cv := range m.VMap {
			if cv == codV && !m.Dom.IsBoundary(dv) {
				m.log.Debug("vertex rejected: non-injective on interior", zap.Int("v", int(v)))
				return false
			}
		}
	}

	m.VMap[v] = codV
	m.vimg[codV] = struct{}{}

	// Interior vertices must carry exactly the same degrees, otherwise an
	// edge outside the image would dangle after deletion. Checking degree
	// counts eagerly is sound because edge images are injective.
	if !m.Dom.IsBoundary(v) {
		if m.Dom.InDegree(v) != m.Cod.InDegree(codV) ||
			m.Dom.OutDegree(v) != m.Cod.OutDegree(codV) {
			m.log.Debug("vertex rejected: gluing degrees", zap.Int("v", int(v)))
			return false
		}
	}
	return true
}

// tryAddEdge extends the match with e -> codE, mapping endpoint vertices
// as forced by incidence preservation.
func (m *Match) tryAddEdge(e, codE hypergraph.EdgeID) bool {
	ed, _ := m.Dom.Edge(e)
	cd, ok := m.Cod.Edge(codE)
	if !ok || ed.Value != cd.Value {
		m.log.Debug("edge rejected: label mismatch",
			zap.Int("e", int(e)), zap.Int("codE", int(codE)))
		return false
	}
	if _, hit := m.eimg[codE]; hit {
		m.log.Debug("edge rejected: non-injective", zap.Int("e", int(e)))
		return false
	}
	if len(ed.S) != len(cd.S) || len(ed.T) != len(cd.T) {
		m.log.Debug("edge rejected: arity mismatch", zap.Int("e", int(e)))
		return false
	}

	m.EMap[e] = codE
	m.eimg[codE] = struct{}{}

	// Each endpoint must be consistent with the current vertex map, or
	// become newly mapped by position.
	for i := range ed.S {
		if !m.forceVertex(ed.S[i], cd.S[i]) {
			return false
		}
	}
	for i := range ed.T {
		if !m.forceVertex(ed.T[i], cd.T[i]) {
			return false
		}
	}
	return true
}

func (m *Match) forceVertex(v, codV hypergraph.VertexID) bool {
	if mapped, ok := m.VMap[v]; ok {
		if mapped != codV {
			m.log.Debug("edge rejected: endpoint conflicts with vertex map", zap.Int("v", int(v)))
			return false
		}
		return true
	}
	return m.tryAddVertex(v, codV)
}

// domNhdMapped reports whether every edge incident to v is already mapped.
func (m *Match) domNhdMapped(v hypergraph.VertexID) bool {
	for _, e := range m.Dom.InEdges(v) {
		if _, ok := m.EMap[e]; !ok {
			return false
		}
	}
	for _, e := range m.Dom.OutEdges(v) {
		if _, ok := m.EMap[e]; !ok {
			return false
		}
	}
	return true
}

// more returns the partial matches extending m by exactly one vertex or
// edge assignment, in deterministic ascending-handle order.
func (m *Match) more() []*Match {
	var ms []*Match

	// First complete the neighborhood of an already-matched vertex.
	for _, v := range sortedKeys(m.VMap) {
		if m.domNhdMapped(v) {
			continue
		}
		codV := m.VMap[v]

		for _, e := range m.Dom.InEdges(v) {
			if _, ok := m.EMap[e]; ok {
				continue
			}
			for _, codE := range m.Cod.InEdges(codV) {
				m1 := m.Copy()
				if m1.tryAddEdge(e, codE) {
					ms = append(ms, m1)
				}
			}
			return ms
		}

		for _, e := range m.Dom.OutEdges(v) {
			if _, ok := m.EMap[e]; ok {
				continue
			}
			for _, codE := range m.Cod.OutEdges(codV) {
				m1 := m.Copy()
				if m1.tryAddEdge(e, codE) {
					ms = append(ms, m1)
				}
			}
			return ms
		}
	}

	// Otherwise seed the next unmapped vertex everywhere it could go.
	for _, v := range m.Dom.Vertices() {
		if _, ok := m.VMap[v]; ok {
			continue
		}
		for _, codV := range m.Cod.Vertices() {
			m1 := m.Copy()
			if m1.tryAddVertex(v, codV) {
				ms = append(ms, m1)
			}
		}
		return ms
	}

	return nil
}

// IsTotal reports whether every vertex and edge of Dom is mapped.
func (m *Match) IsTotal() bool {
	return len(m.VMap) == m.Dom.NumVertices() && len(m.EMap) == m.Dom.NumEdges()
}

// IsSurjective reports whether the image covers all of Cod.
func (m *Match) IsSurjective() bool {
	return len(m.vimg) == m.Cod.NumVertices() && len(m.eimg) == m.Cod.NumEdges()
}

// IsInjective reports whether the vertex map is injective.
func (m *Match) IsInjective() bool {
	return len(m.VMap) == len(m.vimg)
}

// IsConvex reports whether the image is a convex subgraph: no directed
// path of Cod that starts strictly after the image's outputs re-enters an
// image edge. Meaningful for total matches.
func (m *Match) IsConvex() bool {
	// Everything strictly downstream of the images of the pattern outputs.
	outImages := make([]hypergraph.VertexID, 0, len(m.Dom.Outputs()))
	for _, v := range m.Dom.Outputs() {
		outImages = append(outImages, m.VMap[v])
	}
	future := m.Cod.SuccessorSet(outImages)

	// A path out and back in would have to feed a source of an image edge.
	for e := range m.eimg {
		for _, v := range m.Cod.Source(e) {
			if _, hit := future[v]; hit {
				return false
			}
		}
	}
	return true
}

func sortedKeys(mm map[hypergraph.VertexID]hypergraph.VertexID) []hypergraph.VertexID {
	ks := make([]hypergraph.VertexID, 0, len(mm))
	for k := range mm {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	return ks
}

package match

import (
	"slices"

	"github.com/katalvlaran/cospan/hypergraph"
)

// FindIso returns an ordered-boundary isomorphism between g and h, or nil
// if none exists. An isomorphism is a total surjective match whose vertex
// map sends the i-th input of g to the i-th input of h, and likewise for
// outputs; labels and incidence are preserved by the match contract.
func FindIso(g, h *hypergraph.Graph, opts ...Option) *Match {
	if g.NumVertices() != h.NumVertices() || g.NumEdges() != h.NumEdges() {
		return nil
	}
	if !slices.Equal(g.Domain(), h.Domain()) || !slices.Equal(g.Codomain(), h.Codomain()) {
		return nil
	}

	gIn, hIn := g.Inputs(), h.Inputs()
	gOut, hOut := g.Outputs(), h.Outputs()
	if len(gIn) != len(hIn) || len(gOut) != len(hOut) {
		return nil
	}

	ms := Find(g, h, opts...)
	for {
		m, ok := ms.Next()
		if !ok {
			return nil
		}
		if !m.IsSurjective() {
			continue
		}
		if !boundaryAligned(m, gIn, hIn) || !boundaryAligned(m, gOut, hOut) {
			continue
		}
		return m
	}
}

func boundaryAligned(m *Match, from, to []hypergraph.VertexID) bool {
	for i := range from {
		if m.VMap[from[i]] != to[i] {
			return false
		}
	}
	return true
}

// Iso reports whether g and h are isomorphic as hypergraphs with ordered
// boundary.
func Iso(g, h *hypergraph.Graph, opts ...Option) bool {
	return FindIso(g, h, opts...) != nil
}

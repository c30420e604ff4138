package rewrite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cospan/hypergraph"
	"github.com/katalvlaran/cospan/match"
	"github.com/katalvlaran/cospan/rule"
)

var (
	// ErrBadMatch indicates the match does not belong to the rule or is
	// not total — the rewriter was handed malformed inputs.
	ErrBadMatch = errors.New("rewrite: match does not fit rule")

	// ErrNotLeftLinear indicates a non-left-linear rule reached the
	// rewriter. Rule construction rejects these, so hitting this error is
	// a programmer bug.
	ErrNotLeftLinear = errors.New("rewrite: rule not left-linear")
)

// DPO performs the double-pushout step and returns the embeddings of
// r's right-hand side into the rewritten graph. For left-linear rules the
// pushout complement is unique, so the slice has exactly one element.
func DPO(r *rule.Rule, m *match.Match) ([]*match.Match, error) {
	if !r.IsLeftLinear() {
		return nil, fmt.Errorf("%w: %s", ErrNotLeftLinear, r.Name())
	}
	lhs, rhs := r.LHS(), r.RHS()
	if m.Dom != lhs || m.Cod == nil || !m.IsTotal() {
		return nil, fmt.Errorf("%w: %s", ErrBadMatch, r.Name())
	}

	// 1. Pushout complement: drop the matched edges, then the interior of
	//    the matched image. The gluing vertices (boundary images) stay.
	h := m.Cod.Copy()
	for _, e := range lhs.Edges() {
		if err := h.RemoveEdge(m.EMap[e]); err != nil {
			return nil, fmt.Errorf("rewrite %s: %w", r.Name(), err)
		}
	}
	for _, v := range lhs.Vertices() {
		if lhs.IsBoundary(v) {
			continue
		}
		if err := h.RemoveVertex(m.VMap[v]); err != nil {
			return nil, fmt.Errorf("rewrite %s: %w", r.Name(), err)
		}
	}

	// 2. Embed the RHS: boundary lands on the gluing vertices fixed by the
	//    match of the LHS.
	emb := match.New(rhs, h)
	lIn, rIn := lhs.Inputs(), rhs.Inputs()
	for i := range rIn {
		emb.AssignVertex(rIn[i], m.VMap[lIn[i]])
	}
	lOut, rOut := lhs.Outputs(), rhs.Outputs()
	for i := range rOut {
		emb.AssignVertex(rOut[i], m.VMap[lOut[i]])
	}

	// 3. The RHS interior gets fresh handles.
	for _, v := range rhs.Vertices() {
		if rhs.IsBoundary(v) {
			continue
		}
		vd, _ := rhs.Vertex(v)
		emb.AssignVertex(v, h.AddVertex(vd.Value, hypergraph.VertexAt(vd.X, vd.Y)))
	}

	// 4. Copy the RHS edges across the assembled vertex map.
	for _, e := range rhs.Edges() {
		ed, _ := rhs.Edge(e)
		s := make([]hypergraph.VertexID, len(ed.S))
		for i, v := range ed.S {
			s[i] = emb.VMap[v]
		}
		t := make([]hypergraph.VertexID, len(ed.T))
		for i, v := range ed.T {
			t[i] = emb.VMap[v]
		}
		opts := []hypergraph.EdgeOption{hypergraph.EdgeAt(ed.X, ed.Y)}
		if !ed.Hyper {
			opts = append(opts, hypergraph.AsWire())
		}
		f, err := h.AddEdge(ed.Value, s, t, opts...)
		if err != nil {
			return nil, fmt.Errorf("rewrite %s: %w", r.Name(), err)
		}
		emb.AssignEdge(e, f)
	}

	return []*match.Match{emb}, nil
}

// Rewrite applies r at m and returns the rewritten graph, discarding the
// RHS embedding.
func Rewrite(r *rule.Rule, m *match.Match) (*hypergraph.Graph, error) {
	embs, err := DPO(r, m)
	if err != nil {
		return nil, err
	}
	return embs[0].Cod, nil
}

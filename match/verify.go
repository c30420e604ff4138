package match

import (
	"errors"
	"fmt"
)

// ErrUnsound is the class of all Verify failures.
var ErrUnsound = errors.New("match: unsound")

// Verify re-checks the full embedding contract on a total match: totality,
// label preservation, incidence preservation, interior injectivity,
// monogamy preservation, and convexity. The matcher only emits matches
// that pass; Verify exists so tests and debugging tools can confirm it.
func (m *Match) Verify() error {
	if !m.IsTotal() {
		return fmt.Errorf("%w: not total", ErrUnsound)
	}

	// Labels and boundary discipline on vertices.
	for _, v := range m.Dom.Vertices() {
		w, ok := m.VMap[v]
		if !ok {
			return fmt.Errorf("%w: vertex %d unmapped", ErrUnsound, v)
		}
		vd, _ := m.Dom.Vertex(v)
		wd, ok := m.Cod.Vertex(w)
		if !ok {
			return fmt.Errorf("%w: vertex %d maps to missing %d", ErrUnsound, v, w)
		}
		if vd.Value != wd.Value {
			return fmt.Errorf("%w: vertex %d label %q vs %q", ErrUnsound, v, vd.Value, wd.Value)
		}
		if !m.Dom.IsBoundary(v) {
			if m.Cod.IsBoundary(w) {
				return fmt.Errorf("%w: interior vertex %d maps to boundary %d", ErrUnsound, v, w)
			}
			if m.Dom.InDegree(v) != m.Cod.InDegree(w) || m.Dom.OutDegree(v) != m.Cod.OutDegree(w) {
				return fmt.Errorf("%w: vertex %d breaks monogamy preservation at %d", ErrUnsound, v, w)
			}
		}
	}

	// Interior injectivity.
	byImage := make(map[int][]int)
	for _, v := range m.Dom.Vertices() {
		if !m.Dom.IsBoundary(v) {
			byImage[int(m.VMap[v])] = append(byImage[int(m.VMap[v])], int(v))
		}
	}
	for w, vs := range byImage {
		if len(vs) > 1 {
			return fmt.Errorf("%w: interior vertices %v share image %d", ErrUnsound, vs, w)
		}
	}

	// Labels, arity, injectivity, and incidence on edges.
	seen := make(map[int]int)
	for _, e := range m.Dom.Edges() {
		f, ok := m.EMap[e]
		if !ok {
			return fmt.Errorf("%w: edge %d unmapped", ErrUnsound, e)
		}
		if prev, dup := seen[int(f)]; dup {
			return fmt.Errorf("%w: edges %d and %d share image %d", ErrUnsound, prev, e, f)
		}
		seen[int(f)] = int(e)

		ed, _ := m.Dom.Edge(e)
		fd, ok := m.Cod.Edge(f)
		if !ok {
			return fmt.Errorf("%w: edge %d maps to missing %d", ErrUnsound, e, f)
		}
		if ed.Value != fd.Value {
			return fmt.Errorf("%w: edge %d label %q vs %q", ErrUnsound, e, ed.Value, fd.Value)
		}
		if len(ed.S) != len(fd.S) || len(ed.T) != len(fd.T) {
			return fmt.Errorf("%w: edge %d arity differs from image %d", ErrUnsound, e, f)
		}
		for i := range ed.S {
			if m.VMap[ed.S[i]] != fd.S[i] {
				return fmt.Errorf("%w: edge %d source %d not incidence-preserving", ErrUnsound, e, i)
			}
		}
		for i := range ed.T {
			if m.VMap[ed.T[i]] != fd.T[i] {
				return fmt.Errorf("%w: edge %d target %d not incidence-preserving", ErrUnsound, e, i)
			}
		}
	}

	if !m.IsConvex() {
		return fmt.Errorf("%w: image not convex", ErrUnsound)
	}
	return nil
}

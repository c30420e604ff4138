package hypergraph

import "strconv"

// importFrom copies every vertex and edge of other into g, shifted by
// (dx, dy), and returns the handle translation map.
func (g *Graph) importFrom(other *Graph, dx, dy float64) map[VertexID]VertexID {
	vmap := make(map[VertexID]VertexID, other.NumVertices())
	for _, v := range other.Vertices() {
		vd := other.vdata[v]
		w := g.AddVertex(vd.Value, VertexAt(vd.X+dx, vd.Y+dy))
		g.vdata[w].infer = vd.infer
		vmap[v] = w
	}
	for _, e := range other.Edges() {
		ed := other.edata[e]
		s := make([]VertexID, len(ed.S))
		for i, v := range ed.S {
			s[i] = vmap[v]
		}
		t := make([]VertexID, len(ed.T))
		for i, v := range ed.T {
			t[i] = vmap[v]
		}
		opts := []EdgeOption{EdgeAt(ed.X+dx, ed.Y+dy)}
		if !ed.Hyper {
			opts = append(opts, AsWire())
		}
		g.mustAddEdge(ed.Value, s, t, opts...)
	}
	return vmap
}

// yExtent returns the min and max y-coordinate over all vertices and edges.
func (g *Graph) yExtent() (min, max float64) {
	for _, vd := range g.vdata {
		if vd.Y < min {
			min = vd.Y
		}
		if vd.Y > max {
			max = vd.Y
		}
	}
	for _, ed := range g.edata {
		if ed.Y < min {
			min = ed.Y
		}
		if ed.Y > max {
			max = ed.Y
		}
	}
	return min, max
}

func (g *Graph) xExtent() (min, max float64) {
	for _, vd := range g.vdata {
		if vd.X < min {
			min = vd.X
		}
		if vd.X > max {
			max = vd.X
		}
	}
	for _, ed := range g.edata {
		if ed.X < min {
			min = ed.X
		}
		if ed.X > max {
			max = ed.X
		}
	}
	return min, max
}

// TensorWith takes the monoidal product of g in-place with other: a
// disjoint union with the boundaries of other appended after those of g.
// Drawing coordinates are shifted so the two halves stack vertically.
func (g *Graph) TensorWith(other *Graph) {
	_, maxSelf := g.yExtent()
	minOther, _ := other.yExtent()

	// Shift this graph below the y-axis, then copy the other above it.
	for _, vd := range g.vdata {
		vd.Y -= maxSelf
	}
	for _, ed := range g.edata {
		ed.Y -= maxSelf
	}
	vmap := g.importFrom(other, 0, -minOther+1)

	in := make([]VertexID, len(other.inputs))
	for i, v := range other.inputs {
		in[i] = vmap[v]
	}
	out := make([]VertexID, len(other.outputs))
	for i, v := range other.outputs {
		out[i] = vmap[v]
	}
	// The handles were freshly imported, so appending cannot fail.
	_ = g.AddInputs(in)
	_ = g.AddOutputs(out)
}

// Tensor returns g1 * g2 without modifying either operand.
func Tensor(g1, g2 *Graph) *Graph {
	g := g1.Copy()
	g.TensorWith(g2)
	return g
}

// ComposeWith sequentially composes g in-place with other (diagram order:
// other comes after g). The i-th output of g is unified with the i-th input
// of other; unified vertices must agree on their labels, where a wire built
// by Identity or Permutation adopts the label of whatever it is composed
// with. On arity or label mismatch a *ComposeError is returned and g is
// left in an unspecified state; compose on copies to keep the operands.
func (g *Graph) ComposeWith(other *Graph) error {
	if len(g.outputs) != len(other.inputs) {
		return &ComposeError{
			Codomain: g.Codomain(), Domain: other.Domain(),
			Reason: "arity differs",
		}
	}
	// Reject incompatible labels before any mutation.
	for i, v := range g.outputs {
		w := other.inputs[i]
		od, id := g.vdata[v], other.vdata[w]
		if od.Value != id.Value && !od.infer && !id.infer {
			return &ComposeError{
				Codomain: g.Codomain(), Domain: other.Domain(),
				Reason: "label mismatch at position " + strconv.Itoa(i),
			}
		}
	}

	// Lay the other graph out to the right of this one.
	_, maxSelf := g.xExtent()
	minOther, _ := other.xExtent()
	for _, vd := range g.vdata {
		vd.X -= maxSelf
	}
	for _, ed := range g.edata {
		ed.X -= maxSelf
	}
	vmap := g.importFrom(other, -minOther, 0)

	// Plug the graphs together: the outputs of g are merged pairwise into
	// the copied inputs of other.
	plug1 := append([]VertexID(nil), g.outputs...)
	plug2 := make([]VertexID, len(other.inputs))
	for i, v := range other.inputs {
		plug2[i] = vmap[v]
	}

	out := make([]VertexID, len(other.outputs))
	for i, v := range other.outputs {
		out[i] = vmap[v]
	}
	g.setOutputs(out)

	// quotient tracks which vertices have been merged into which, so a
	// repeated boundary vertex keeps plugging into its surviving image.
	quotient := make(map[VertexID]VertexID)
	for i := range plug1 {
		p1, p2 := plug1[i], plug2[i]
		for {
			q, ok := quotient[p1]
			if !ok {
				break
			}
			p1 = q
		}
		for {
			q, ok := quotient[p2]
			if !ok {
				break
			}
			p2 = q
		}
		if p1 == p2 {
			continue
		}

		d1, d2 := g.vdata[p1], g.vdata[p2]
		switch {
		case d1.infer && d2.infer:
			if d1.Value != d2.Value {
				return &ComposeError{
					Codomain: g.Codomain(), Domain: other.Domain(),
					Reason: "ambiguous label at position " + strconv.Itoa(i),
				}
			}
		case d1.infer:
			d1.Value = d2.Value
			d1.infer = false
		case d2.infer:
			d2.Value = d1.Value
			d2.infer = false
		default:
			if d1.Value != d2.Value {
				return &ComposeError{
					Codomain: g.Codomain(), Domain: other.Domain(),
					Reason: "label mismatch at position " + strconv.Itoa(i),
				}
			}
		}

		if err := g.MergeVertices(p1, p2); err != nil {
			return err
		}
		quotient[p2] = p1
	}
	return nil
}

// Compose returns g1 ; g2 without modifying either operand.
func Compose(g1, g2 *Graph) (*Graph, error) {
	g := g1.Copy()
	if err := g.ComposeWith(g2); err != nil {
		return nil, err
	}
	return g, nil
}

package term

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cospan/hypergraph"
)

// LayerDecomp sorts the edges of g into layers such that every edge's
// sources are produced by the previous layer. Wires that cross a layer are
// split by inserting explicit identity boxes, so g is modified; pass a copy
// to keep the original. The graph must be monogamous and acyclic.
func LayerDecomp(g *hypergraph.Graph) ([][]hypergraph.EdgeID, error) {
	var eLayers [][]hypergraph.EdgeID
	var vLayer []hypergraph.VertexID
	vPlaced := make(map[hypergraph.VertexID]bool)

	// Mark all inputs as placed, splitting any wire that is both an input
	// and an output so it passes through at least one box.
	outputs := outputSet(g)
	for _, v := range g.Inputs() {
		if outputs[v] {
			if _, err := g.InsertIdentityAfter(v, false); err != nil {
				return nil, err
			}
		}
		vLayer = append(vLayer, v)
		vPlaced[v] = true
	}

	newIDs := make(map[hypergraph.EdgeID]bool)
	edges := make(map[hypergraph.EdgeID]bool, g.NumEdges())
	for _, e := range g.Edges() {
		edges[e] = true
	}

	for len(edges) > 0 {
		// 1. An edge is ready when all its sources have been placed.
		ready := make(map[hypergraph.EdgeID]bool)
		for e := range edges {
			ok := true
			for _, v := range g.Source(e) {
				if !vPlaced[v] {
					ok = false
					break
				}
			}
			if ok {
				ready[e] = true
			}
		}

		// 2. Any placed wire that is an output, or feeds a non-ready edge,
		//    gets an identity box so it survives into the next layer.
		outputs = outputSet(g)
		for _, v := range vLayer {
			needsID := outputs[v]
			if !needsID {
				for _, e := range g.OutEdges(v) {
					if !ready[e] {
						needsID = true
						break
					}
				}
			}
			if needsID {
				id, err := g.InsertIdentityAfter(v, false)
				if err != nil {
					return nil, err
				}
				newIDs[id] = true
				ready[id] = true
			}
		}

		// 3. Commit the layer in ascending handle order.
		eLayer := make([]hypergraph.EdgeID, 0, len(ready))
		for e := range ready {
			eLayer = append(eLayer, e)
		}
		sort.Slice(eLayer, func(i, j int) bool { return eLayer[i] < eLayer[j] })

		progress := false
		for _, e := range eLayer {
			if !newIDs[e] {
				progress = true
			}
			delete(edges, e)
		}
		if !progress {
			return nil, fmt.Errorf("term: layer decomposition stuck: %w", hypergraph.ErrCyclic)
		}
		eLayers = append(eLayers, eLayer)

		if len(edges) > 0 {
			vLayer = vLayer[:0]
			for _, e := range eLayer {
				for _, v := range g.Target(e) {
					vPlaced[v] = true
					vLayer = append(vLayer, v)
				}
			}
		}
	}

	sortLayersByPosition(g, eLayers)
	return eLayers, nil
}

// sortLayersByPosition reduces wire crossings by ordering each layer
// according to the ideal positions of its source (forward pass) and target
// (backward pass) vertices.
func sortLayersByPosition(g *hypergraph.Graph, eLayers [][]hypergraph.EdgeID) {
	for it := 0; it < 2; it++ {
		for jj := 0; jj < len(eLayers); jj++ {
			j := jj
			if it == 1 {
				j = len(eLayers) - 1 - jj
			}

			var inp []hypergraph.VertexID
			if j > 0 {
				for _, e := range eLayers[j-1] {
					inp = append(inp, g.Target(e)...)
				}
			} else {
				inp = g.Inputs()
			}
			inpPos := make(map[hypergraph.VertexID]float64, len(inp))
			for i, v := range inp {
				inpPos[v] = float64(i) / float64(len(inp))
			}

			// The forward pass ignores downstream positions.
			var outpPos map[hypergraph.VertexID]float64
			if it != 0 {
				var outp []hypergraph.VertexID
				if j < len(eLayers)-1 {
					for _, e := range eLayers[j+1] {
						outp = append(outp, g.Source(e)...)
					}
				} else {
					outp = g.Outputs()
				}
				outpPos = make(map[hypergraph.VertexID]float64, len(outp))
				for i, v := range outp {
					outpPos[v] = float64(i) / float64(len(outp))
				}
			}

			ePos := make(map[hypergraph.EdgeID]float64, len(eLayers[j]))
			for _, e := range eLayers[j] {
				src := g.Source(e)
				pos := 0.0
				if len(src) > 0 {
					for _, v := range src {
						pos += inpPos[v]
					}
					pos /= float64(len(src))
				}
				if outpPos != nil {
					tgt := g.Target(e)
					if len(tgt) > 0 {
						tpos := 0.0
						for _, v := range tgt {
							tpos += outpPos[v]
						}
						pos += 2 * tpos / float64(len(tgt))
					}
				}
				ePos[e] = pos
			}
			layer := eLayers[j]
			sort.SliceStable(layer, func(a, b int) bool { return ePos[layer[a]] < ePos[layer[b]] })
		}
	}
}

func outputSet(g *hypergraph.Graph) map[hypergraph.VertexID]bool {
	set := make(map[hypergraph.VertexID]bool)
	for _, v := range g.Outputs() {
		set[v] = true
	}
	return set
}

// FromGraph decomposes a monogamous acyclic graph into a term whose
// compilation is isomorphic to g. The graph is not modified.
func FromGraph(g *hypergraph.Graph) (Term, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	h := g.Copy()
	eLayers, err := LayerDecomp(h)
	if err != nil {
		return nil, err
	}

	inLayer := h.Inputs()
	var seq []Term

	for _, layer := range eLayers {
		// Wiring from the current vertex layer to the layer's sources.
		var outLayer []hypergraph.VertexID
		for _, e := range layer {
			outLayer = append(outLayer, h.Source(e)...)
		}
		perm, err := positionsOf(inLayer, outLayer)
		if err != nil {
			return nil, err
		}
		if !isIdentityPerm(perm) {
			seq = append(seq, permLayer(perm))
		}

		// The parallel composition of the layer's boxes.
		par := make([]Term, 0, len(layer))
		for _, e := range layer {
			ed, _ := h.Edge(e)
			if ed.Value == "id" && len(ed.S) == 1 && len(ed.T) == 1 {
				par = append(par, IdTerm{})
			} else {
				par = append(par, GenTerm{
					Name:     ed.Value,
					Domain:   labelsOf(h, ed.S),
					Codomain: labelsOf(h, ed.T),
				})
			}
		}
		seq = append(seq, Par(par...))

		inLayer = inLayer[:0]
		for _, e := range layer {
			inLayer = append(inLayer, h.Target(e)...)
		}
	}

	// Wiring from the final vertex layer to the outputs.
	perm, err := positionsOf(inLayer, h.Outputs())
	if err != nil {
		return nil, err
	}
	if !isIdentityPerm(perm) {
		seq = append(seq, permLayer(perm))
	}

	if len(seq) == 0 {
		return Id0Term{}, nil
	}
	return Seq(seq...), nil
}

// positionsOf maps each vertex of want to its position in have.
func positionsOf(have, want []hypergraph.VertexID) ([]int, error) {
	pos := make(map[hypergraph.VertexID]int, len(have))
	for i, v := range have {
		pos[v] = i
	}
	perm := make([]int, len(want))
	for i, v := range want {
		p, ok := pos[v]
		if !ok {
			return nil, fmt.Errorf("term: layer wiring lost vertex %d", v)
		}
		perm[i] = p
	}
	return perm, nil
}

func isIdentityPerm(p []int) bool {
	for i, x := range p {
		if x != i {
			return false
		}
	}
	return true
}

// permLayer renders a wiring permutation as a parallel product of
// independent swaps and identities.
func permLayer(perm []int) Term {
	pieces := SplitPerm(perm)
	par := make([]Term, 0, len(pieces))
	for _, p := range pieces {
		if len(p) == 1 {
			par = append(par, IdTerm{})
		} else {
			par = append(par, PermTerm{P: p})
		}
	}
	return Par(par...)
}

// SplitPerm splits a permutation into the tensor product of independent
// permutations on consecutive blocks.
func SplitPerm(perm []int) [][]int {
	var perms [][]int
	rest := perm
	for len(rest) > 0 {
		m := 0
		for i, x := range rest {
			if x > m {
				m = x
			}
			if m <= i {
				perms = append(perms, append([]int(nil), rest[:i+1]...))
				next := make([]int, 0, len(rest)-i-1)
				for _, y := range rest[i+1:] {
					next = append(next, y-(i+1))
				}
				rest = next
				break
			}
		}
	}
	return perms
}

func labelsOf(g *hypergraph.Graph, vs []hypergraph.VertexID) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		vd, _ := g.Vertex(v)
		out[i] = vd.Value
	}
	return out
}

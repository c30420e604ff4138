package hypergraph

import "fmt"

// Identity returns the graph of n parallel identity wires: n vertices, no
// edges, inputs equal to outputs. The wires carry inferable labels, so they
// adopt concrete labels when composed.
func Identity(n int) *Graph {
	g := NewGraph()
	vs := make([]VertexID, n)
	for i := range vs {
		vs[i] = g.AddVertex("", withInfer(), VertexAt(0, float64(i)-float64(n-1)/2))
	}
	// Fresh handles, boundary setting cannot fail.
	_ = g.SetInputs(vs)
	_ = g.SetOutputs(vs)
	return g
}

// Permutation returns the wiring graph of the permutation p, read as
// { p[0] -> 0, p[1] -> 1, ... }: input p[i] is the same vertex as output i.
// For single-output generators a0, a1, a2 this gives
//
//	(a0 * a1 * a2) ; Permutation([2, 0, 1]) = a2 * a0 * a1.
//
// Returns ErrBadPermutation if p is not a bijection on 0..len(p)-1.
func Permutation(p []int) (*Graph, error) {
	n := len(p)
	seen := make([]bool, n)
	for _, x := range p {
		if x < 0 || x >= n || seen[x] {
			return nil, fmt.Errorf("%w: %v", ErrBadPermutation, p)
		}
		seen[x] = true
	}

	g := NewGraph()
	in := make([]VertexID, n)
	for i := range in {
		in[i] = g.AddVertex("", withInfer(), VertexAt(0, float64(i)-float64(n-1)/2))
	}
	out := make([]VertexID, n)
	for i := range out {
		out[i] = in[p[i]]
	}
	_ = g.SetInputs(in)
	_ = g.SetOutputs(out)
	return g, nil
}

// Swap returns the two-wire symmetry, Permutation([1, 0]).
func Swap() *Graph {
	g, _ := Permutation([]int{1, 0})
	return g
}

// Generator returns the graph of a single hyperedge labeled value with
// arityIn unlabeled input wires and arityOut unlabeled output wires.
func Generator(value string, arityIn, arityOut int) *Graph {
	return TypedGenerator(value, make([]string, arityIn), make([]string, arityOut))
}

// TypedGenerator returns the graph of a single hyperedge labeled value whose
// boundary wires carry the given domain and codomain labels.
func TypedGenerator(value string, domain, codomain []string) *Graph {
	g := NewGraph()
	in := make([]VertexID, len(domain))
	for i, val := range domain {
		in[i] = g.AddVertex(val, VertexAt(-1.5, float64(i)-float64(i-1)/2))
	}
	out := make([]VertexID, len(codomain))
	for i, val := range codomain {
		out[i] = g.AddVertex(val, VertexAt(1.5, float64(i)-float64(i-1)/2))
	}
	g.mustAddEdge(value, in, out)
	_ = g.SetInputs(in)
	_ = g.SetOutputs(out)
	return g
}

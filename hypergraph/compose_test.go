package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cospan/hypergraph"
)

// TestIdentity verifies scenario "identity compilation" at the graph level:
// one boundary vertex per wire, no edges, inputs == outputs.
func TestIdentity(t *testing.T) {
	g := hypergraph.Identity(1)
	require.Equal(t, 1, g.NumVertices())
	require.Zero(t, g.NumEdges())
	require.Equal(t, g.Inputs(), g.Outputs())

	g2 := hypergraph.Identity(2)
	require.Equal(t, 2, g2.NumVertices())
	in, out := g2.Arity()
	require.Equal(t, 2, in)
	require.Equal(t, 2, out)
}

// TestPermutation verifies the wiring convention: input p[i] is output i.
func TestPermutation(t *testing.T) {
	p, err := hypergraph.Permutation([]int{2, 0, 1})
	require.NoError(t, err)
	in := p.Inputs()
	out := p.Outputs()
	require.Equal(t, in[2], out[0])
	require.Equal(t, in[0], out[1])
	require.Equal(t, in[1], out[2])

	for _, bad := range [][]int{{0, 0}, {1, 2}, {-1, 0}} {
		_, err = hypergraph.Permutation(bad)
		require.ErrorIs(t, err, hypergraph.ErrBadPermutation, "perm %v", bad)
	}

	sw := hypergraph.Swap()
	require.Equal(t, sw.Inputs()[0], sw.Outputs()[1])
	require.Equal(t, sw.Inputs()[1], sw.Outputs()[0])
}

// TestGenerator verifies the one-edge primitive graph.
func TestGenerator(t *testing.T) {
	m := hypergraph.Generator("m", 2, 1)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, 1, m.NumEdges())
	in, out := m.Arity()
	require.Equal(t, 2, in)
	require.Equal(t, 1, out)
	require.NoError(t, m.Validate())

	e := m.Edges()[0]
	require.Equal(t, m.Inputs(), m.Source(e))
	require.Equal(t, m.Outputs(), m.Target(e))

	typed := hypergraph.TypedGenerator("c", []string{"q"}, []string{"q", "b"})
	require.Equal(t, []string{"q"}, typed.Domain())
	require.Equal(t, []string{"q", "b"}, typed.Codomain())
}

// TestTensor verifies disjoint union with concatenated boundaries.
func TestTensor(t *testing.T) {
	f := hypergraph.Generator("f", 1, 1)
	g := hypergraph.Generator("g", 2, 1)

	fg := hypergraph.Tensor(f, g)
	require.Equal(t, 6, fg.NumVertices())
	require.Equal(t, 2, fg.NumEdges())
	in, out := fg.Arity()
	require.Equal(t, 3, in)
	require.Equal(t, 2, out)
	require.NoError(t, fg.Validate())

	// The operands are untouched.
	require.Equal(t, 1, f.NumEdges())
	require.Equal(t, 1, g.NumEdges())
}

// TestCompose verifies sequential composition: boundary plugging, vertex
// quotienting, and the resulting arity.
func TestCompose(t *testing.T) {
	f := hypergraph.Generator("f", 1, 2)
	g := hypergraph.Generator("g", 2, 1)

	fg, err := hypergraph.Compose(f, g)
	require.NoError(t, err)
	// 3 + 3 vertices minus the 2 unified at the join.
	require.Equal(t, 4, fg.NumVertices())
	require.Equal(t, 2, fg.NumEdges())
	in, out := fg.Arity()
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)
	require.NoError(t, fg.Validate())
}

// TestComposeArityMismatch verifies the typed error for |out| != |in|.
func TestComposeArityMismatch(t *testing.T) {
	f := hypergraph.Generator("f", 1, 2)
	h := hypergraph.Generator("h", 1, 1)

	_, err := hypergraph.Compose(f, h)
	require.ErrorIs(t, err, hypergraph.ErrCompose)
}

// TestComposeLabelMismatch verifies that unifying differently labeled
// vertices is a type error, while inferable wires adopt labels.
func TestComposeLabelMismatch(t *testing.T) {
	q := hypergraph.TypedGenerator("prep", nil, []string{"q"})
	b := hypergraph.TypedGenerator("disc", []string{"b"}, nil)

	_, err := hypergraph.Compose(q, b)
	require.ErrorIs(t, err, hypergraph.ErrCompose)

	// Identity wires are label-agnostic: q ; id ; measure(q->b) is fine
	// and the identity wire picks up label "q".
	meas := hypergraph.TypedGenerator("meas", []string{"q"}, []string{"b"})
	qid, err := hypergraph.Compose(q, hypergraph.Identity(1))
	require.NoError(t, err)
	require.Equal(t, []string{"q"}, qid.Codomain())

	all, err := hypergraph.Compose(qid, meas)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, all.Codomain())
	require.NoError(t, all.Validate())
}

// TestComposeSwapTwice verifies the quotient chain: composing
// a swap with itself yields the identity wiring.
func TestComposeSwapTwice(t *testing.T) {
	swsw, err := hypergraph.Compose(hypergraph.Swap(), hypergraph.Swap())
	require.NoError(t, err)

	in := swsw.Inputs()
	out := swsw.Outputs()
	require.Equal(t, in[0], out[0])
	require.Equal(t, in[1], out[1])
	require.Equal(t, 2, swsw.NumVertices())
	require.NoError(t, swsw.Validate())
}

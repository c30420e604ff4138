package hypergraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cospan/hypergraph"
)

// TestAddRemoveVertex locks in handle allocation, lookup, and removal.
func TestAddRemoveVertex(t *testing.T) {
	g := hypergraph.NewGraph()

	v0 := g.AddVertex("x")
	v1 := g.AddVertex("y", hypergraph.VertexAt(1, 2))
	require.NotEqual(t, v0, v1)
	require.Equal(t, 2, g.NumVertices())

	vd, ok := g.Vertex(v1)
	require.True(t, ok)
	require.Equal(t, "y", vd.Value)
	require.Equal(t, 1.0, vd.X)
	require.Equal(t, 2.0, vd.Y)

	require.NoError(t, g.RemoveVertex(v0))
	require.Equal(t, 1, g.NumVertices())
	require.ErrorIs(t, g.RemoveVertex(v0), hypergraph.ErrVertexNotFound)

	// Handles are never reused after a removal.
	v2 := g.AddVertex("z")
	require.NotEqual(t, v0, v2)
	require.NotEqual(t, v1, v2)
}

// TestAddEdgeIncidence verifies both-sided incidence bookkeeping, including
// repeated vertices in a single edge list.
func TestAddEdgeIncidence(t *testing.T) {
	g := hypergraph.NewGraph()
	a := g.AddVertex("")
	b := g.AddVertex("")

	e, err := g.AddEdge("f", []hypergraph.VertexID{a, a}, []hypergraph.VertexID{b})
	require.NoError(t, err)

	require.Equal(t, []hypergraph.VertexID{a, a}, g.Source(e))
	require.Equal(t, []hypergraph.VertexID{b}, g.Target(e))
	require.Equal(t, []hypergraph.EdgeID{e}, g.OutEdges(a))
	require.Equal(t, []hypergraph.EdgeID{e}, g.InEdges(b))
	require.Empty(t, g.InEdges(a))

	_, err = g.AddEdge("f", []hypergraph.VertexID{a}, []hypergraph.VertexID{99})
	require.ErrorIs(t, err, hypergraph.ErrVertexNotFound)

	require.NoError(t, g.RemoveEdge(e))
	require.Empty(t, g.OutEdges(a))
	require.Empty(t, g.InEdges(b))
	require.ErrorIs(t, g.RemoveEdge(e), hypergraph.ErrEdgeNotFound)
}

// TestRemoveVertexCleansBoundary verifies the non-strict removal contract:
// the vertex disappears from edge lists and boundary lists alike.
func TestRemoveVertexCleansBoundary(t *testing.T) {
	g := hypergraph.NewGraph()
	a := g.AddVertex("")
	b := g.AddVertex("")
	e, err := g.AddEdge("f", []hypergraph.VertexID{a}, []hypergraph.VertexID{b})
	require.NoError(t, err)
	require.NoError(t, g.SetInputs([]hypergraph.VertexID{a}))
	require.NoError(t, g.SetOutputs([]hypergraph.VertexID{b}))

	require.NoError(t, g.RemoveVertex(a))
	require.Empty(t, g.Inputs())
	require.Empty(t, g.Source(e))
	require.Equal(t, []hypergraph.VertexID{b}, g.Target(e))
}

// TestBoundary verifies ordered, repeatable boundary lists and the
// input/output predicates.
func TestBoundary(t *testing.T) {
	g := hypergraph.NewGraph()
	a := g.AddVertex("")
	b := g.AddVertex("")

	require.ErrorIs(t, g.SetInputs([]hypergraph.VertexID{42}), hypergraph.ErrVertexNotFound)

	// Repetition in the boundary is legal and order is preserved.
	require.NoError(t, g.SetInputs([]hypergraph.VertexID{a, b, a}))
	require.NoError(t, g.SetOutputs([]hypergraph.VertexID{b}))
	require.Equal(t, []hypergraph.VertexID{a, b, a}, g.Inputs())

	in, out := g.Arity()
	require.Equal(t, 3, in)
	require.Equal(t, 1, out)

	require.True(t, g.IsInput(a))
	require.True(t, g.IsInput(b))
	require.False(t, g.IsOutput(a))
	require.True(t, g.IsOutput(b))
	require.True(t, g.IsBoundary(a))

	require.NoError(t, g.SetInputs([]hypergraph.VertexID{b}))
	require.False(t, g.IsInput(a))
}

// TestMergeVertices verifies quotienting: edge lists and boundaries follow
// the surviving handle.
func TestMergeVertices(t *testing.T) {
	g := hypergraph.NewGraph()
	a := g.AddVertex("")
	b := g.AddVertex("")
	c := g.AddVertex("")
	e1, err := g.AddEdge("f", []hypergraph.VertexID{a}, []hypergraph.VertexID{b})
	require.NoError(t, err)
	e2, err := g.AddEdge("g", []hypergraph.VertexID{c}, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetInputs([]hypergraph.VertexID{a}))
	require.NoError(t, g.SetOutputs([]hypergraph.VertexID{}))

	require.NoError(t, g.MergeVertices(b, c))
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, []hypergraph.VertexID{b}, g.Source(e2))
	require.Equal(t, []hypergraph.VertexID{b}, g.Target(e1))
	require.ElementsMatch(t, []hypergraph.EdgeID{e1}, g.InEdges(b))
	require.ElementsMatch(t, []hypergraph.EdgeID{e2}, g.OutEdges(b))

	require.ErrorIs(t, g.MergeVertices(b, c), hypergraph.ErrVertexNotFound)
}

// TestSuccessors verifies the downstream closure used by convexity checks.
func TestSuccessors(t *testing.T) {
	// a -f-> b -g-> c, plus an isolated d.
	g := hypergraph.NewGraph()
	a := g.AddVertex("")
	b := g.AddVertex("")
	c := g.AddVertex("")
	d := g.AddVertex("")
	_, err := g.AddEdge("f", []hypergraph.VertexID{a}, []hypergraph.VertexID{b})
	require.NoError(t, err)
	_, err = g.AddEdge("g", []hypergraph.VertexID{b}, []hypergraph.VertexID{c})
	require.NoError(t, err)

	require.Equal(t, []hypergraph.VertexID{b, c}, g.Successors(a))
	require.Equal(t, []hypergraph.VertexID{c}, g.Successors(b))
	require.Empty(t, g.Successors(c))
	require.Empty(t, g.Successors(d))
}

// TestCopyIsDeep verifies that mutating a copy leaves the original intact.
func TestCopyIsDeep(t *testing.T) {
	g := hypergraph.Generator("f", 1, 2)
	h := g.Copy()

	require.Equal(t, g.NumVertices(), h.NumVertices())
	require.Equal(t, g.Inputs(), h.Inputs())
	require.Equal(t, g.Outputs(), h.Outputs())

	for _, e := range h.Edges() {
		require.NoError(t, h.RemoveEdge(e))
	}
	require.Equal(t, 1, g.NumEdges())
	require.Zero(t, h.NumEdges())
}

// TestInsertIdentityAfter verifies wire splitting used by layer
// decomposition.
func TestInsertIdentityAfter(t *testing.T) {
	g := hypergraph.Identity(1)
	v := g.Inputs()[0]

	e, err := g.InsertIdentityAfter(v, false)
	require.NoError(t, err)

	ed, ok := g.Edge(e)
	require.True(t, ok)
	require.Equal(t, "id", ed.Value)
	require.Equal(t, []hypergraph.VertexID{v}, g.Source(e))

	// The original vertex keeps the input slot; the fresh one takes over
	// the output slot.
	require.Equal(t, []hypergraph.VertexID{v}, g.Inputs())
	require.NotEqual(t, v, g.Outputs()[0])
	require.Equal(t, g.Target(e), g.Outputs())
	require.NoError(t, g.Validate())

	_, err = g.InsertIdentityAfter(777, false)
	require.ErrorIs(t, err, hypergraph.ErrVertexNotFound)
}

// TestDeterministicIteration verifies sorted handle enumeration.
func TestDeterministicIteration(t *testing.T) {
	g := hypergraph.NewGraph()
	var want []hypergraph.VertexID
	for i := 0; i < 20; i++ {
		want = append(want, g.AddVertex(""))
	}
	for i := 0; i < 16; i++ {
		require.Equal(t, want, g.Vertices())
	}
}

func TestErrorsTaxonomy(t *testing.T) {
	var cerr *hypergraph.ComposeError
	_, err := hypergraph.Compose(hypergraph.Identity(2), hypergraph.Identity(3))
	require.ErrorIs(t, err, hypergraph.ErrCompose)
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, "arity differs", cerr.Reason)
}

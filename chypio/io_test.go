package chypio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cospan/chypio"
	"github.com/katalvlaran/cospan/hypergraph"
	"github.com/katalvlaran/cospan/match"
	"github.com/katalvlaran/cospan/rule"
	"github.com/katalvlaran/cospan/term"
)

const wireGraph = `{
  "vertices": {
    "0": {"x": -2.0, "y": 0.0, "value": ""},
    "1": {"x": 2.0, "y": 0.5, "value": ""}
  },
  "edges": {
    "0": {"s": ["0"], "t": ["1"], "x": 0.0, "y": 0.25, "hyper": true, "value": "f"}
  },
  "inputs": ["0"],
  "outputs": ["1"]
}`

// TestUnmarshalGraph decodes a single-box diagram, preserving handles and
// positions.
func TestUnmarshalGraph(t *testing.T) {
	g, err := chypio.UnmarshalGraph([]byte(wireGraph))
	require.NoError(t, err)

	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, []hypergraph.VertexID{0}, g.Inputs())
	require.Equal(t, []hypergraph.VertexID{1}, g.Outputs())

	vd, ok := g.Vertex(0)
	require.True(t, ok)
	require.Equal(t, -2.0, vd.X)

	ed, ok := g.Edge(0)
	require.True(t, ok)
	require.Equal(t, "f", ed.Value)
	require.True(t, ed.Hyper)
}

// TestGraphRoundTrip: marshal then unmarshal is the identity, including
// cosmetic positions.
func TestGraphRoundTrip(t *testing.T) {
	g, err := term.Compile(term.Seq(
		term.Par(term.Gen("g", 1, 2), term.Gen("g", 1, 2)),
		term.Par(term.Id(), term.Swap(), term.Id()),
		term.Par(term.Gen("f", 2, 1), term.Gen("f", 2, 1))))
	require.NoError(t, err)

	data, err := chypio.MarshalGraph(g)
	require.NoError(t, err)
	back, err := chypio.UnmarshalGraph(data)
	require.NoError(t, err)

	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, g.Edges(), back.Edges())
	require.Equal(t, g.Inputs(), back.Inputs())
	require.Equal(t, g.Outputs(), back.Outputs())
	for _, v := range g.Vertices() {
		want, _ := g.Vertex(v)
		got, _ := back.Vertex(v)
		require.Equal(t, want.X, got.X)
		require.Equal(t, want.Y, got.Y)
		require.Equal(t, want.Value, got.Value)
	}
	require.True(t, match.Iso(g, back))
}

// TestUnmarshalRejects covers the strict-format failure classes.
func TestUnmarshalRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"unknown top-level field", `{"vertices": {}, "edges": {}, "inputs": [], "outputs": [], "extra": 1}`},
		{"unknown vertex field", `{"vertices": {"0": {"x": 0, "y": 0, "value": "", "color": "red"}}, "edges": {}, "inputs": [], "outputs": []}`},
		{"missing value", `{"vertices": {"0": {"x": 0, "y": 0}}, "edges": {}, "inputs": [], "outputs": []}`},
		{"null numeric", `{"vertices": {"0": {"x": null, "y": 0, "value": ""}}, "edges": {}, "inputs": [], "outputs": []}`},
		{"missing hyper", `{"vertices": {"0": {"x": 0, "y": 0, "value": ""}, "1": {"x": 0, "y": 0, "value": ""}}, "edges": {"0": {"s": ["0"], "t": ["1"], "x": 0, "y": 0, "value": "f"}}, "inputs": ["0"], "outputs": ["1"]}`},
		{"negative name", `{"vertices": {"-1": {"x": 0, "y": 0, "value": ""}}, "edges": {}, "inputs": [], "outputs": []}`},
		{"non-numeric name", `{"vertices": {"a": {"x": 0, "y": 0, "value": ""}}, "edges": {}, "inputs": [], "outputs": []}`},
		{"dangling edge endpoint", `{"vertices": {"0": {"x": 0, "y": 0, "value": ""}}, "edges": {"0": {"s": ["0"], "t": ["7"], "x": 0, "y": 0, "hyper": true, "value": "f"}}, "inputs": ["0"], "outputs": []}`},
		{"dangling boundary", `{"vertices": {}, "edges": {}, "inputs": ["3"], "outputs": []}`},
		{"missing section", `{"vertices": {}, "edges": {}, "inputs": []}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := chypio.UnmarshalGraph([]byte(c.doc))
			require.ErrorIs(t, err, chypio.ErrFormat)
		})
	}
}

// TestUnmarshalRejectsInvariants: a well-formed document whose graph
// breaks monogamy or acyclicity is fatal for the file.
func TestUnmarshalRejectsInvariants(t *testing.T) {
	nonMonogamous := `{
  "vertices": {
    "0": {"x": 0, "y": 0, "value": ""},
    "1": {"x": 0, "y": 0, "value": ""},
    "2": {"x": 0, "y": 0, "value": ""}
  },
  "edges": {
    "0": {"s": ["0"], "t": ["2"], "x": 0, "y": 0, "hyper": true, "value": "f"},
    "1": {"s": ["1"], "t": ["2"], "x": 0, "y": 0, "hyper": true, "value": "g"}
  },
  "inputs": ["0", "1"],
  "outputs": ["2"]
}`
	_, err := chypio.UnmarshalGraph([]byte(nonMonogamous))
	require.ErrorIs(t, err, hypergraph.ErrNotMonogamous)

	cyclic := `{
  "vertices": {
    "0": {"x": 0, "y": 0, "value": ""},
    "1": {"x": 0, "y": 0, "value": ""}
  },
  "edges": {
    "0": {"s": ["0"], "t": ["1"], "x": 0, "y": 0, "hyper": true, "value": "f"},
    "1": {"s": ["1"], "t": ["0"], "x": 0, "y": 0, "hyper": true, "value": "g"}
  },
  "inputs": [],
  "outputs": []
}`
	_, err = chypio.UnmarshalGraph([]byte(cyclic))
	require.ErrorIs(t, err, hypergraph.ErrCyclic)
}

// TestRuleRoundTrip saves and reloads a rule through files.
func TestRuleRoundTrip(t *testing.T) {
	lhs, err := term.Compile(term.Seq(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
	require.NoError(t, err)
	rhs, err := term.Compile(term.Gen("h", 1, 1))
	require.NoError(t, err)
	r, err := rule.New("fuse", lhs, rhs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fuse.chyprule")
	require.NoError(t, chypio.SaveRule(path, r))

	back, err := chypio.LoadRule(path)
	require.NoError(t, err)
	require.Equal(t, "fuse", back.Name())
	require.True(t, match.Iso(r.LHS(), back.LHS()))
	require.True(t, match.Iso(r.RHS(), back.RHS()))
}

// TestRuleRejectsBoundaryMismatch: the loader enforces rule validation.
func TestRuleRejectsBoundaryMismatch(t *testing.T) {
	lhsDoc := `{"vertices": {"0": {"x": 0, "y": 0, "value": ""}, "1": {"x": 0, "y": 0, "value": ""}},
  "edges": {"0": {"s": ["0"], "t": ["1"], "x": 0, "y": 0, "hyper": true, "value": "f"}},
  "inputs": ["0"], "outputs": ["1"]}`
	// RHS has arity 0 -> 1 instead of 1 -> 1.
	rhsDoc := `{"vertices": {"0": {"x": 0, "y": 0, "value": ""}},
  "edges": {"0": {"s": [], "t": ["0"], "x": 0, "y": 0, "hyper": true, "value": "c"}},
  "inputs": [], "outputs": ["0"]}`

	_, err := chypio.UnmarshalRule([]byte(`{"lhs": `+lhsDoc+`, "rhs": `+rhsDoc+`}`), "bad")
	require.ErrorIs(t, err, rule.ErrBoundaryArity)

	_, err = chypio.UnmarshalRule([]byte(`{"lhs": `+lhsDoc+`}`), "bad")
	require.ErrorIs(t, err, chypio.ErrFormat)
}

// TestLoadGraphFile exercises the file wrappers.
func TestLoadGraphFile(t *testing.T) {
	g, err := term.Compile(term.Gen("f", 2, 1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "f.chyp")
	require.NoError(t, chypio.SaveGraph(path, g))

	back, err := chypio.LoadGraph(path)
	require.NoError(t, err)
	require.True(t, match.Iso(g, back))

	_, err = chypio.LoadGraph(filepath.Join(t.TempDir(), "missing.chyp"))
	require.Error(t, err)
}

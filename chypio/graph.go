package chypio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/katalvlaran/cospan/hypergraph"
)

// ErrFormat indicates a document that violates the file-format contract.
var ErrFormat = errors.New("chypio: bad file format")

// vertexDoc mirrors one entry of the "vertices" object. Pointer fields
// distinguish absent/null from zero, which the format forbids.
type vertexDoc struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Value *string  `json:"value"`
}

// edgeDoc mirrors one entry of the "edges" object.
type edgeDoc struct {
	S     []string `json:"s"`
	T     []string `json:"t"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Hyper *bool    `json:"hyper"`
	Value *string  `json:"value"`
}

type graphDoc struct {
	Vertices map[string]vertexDoc `json:"vertices"`
	Edges    map[string]edgeDoc   `json:"edges"`
	Inputs   []string             `json:"inputs"`
	Outputs  []string             `json:"outputs"`
}

// UnmarshalGraph decodes a .chyp document and validates the graph
// invariants. Unknown fields and null/missing required fields are
// rejected with ErrFormat.
func UnmarshalGraph(data []byte) (*hypergraph.Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc graphDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Vertices == nil || doc.Edges == nil || doc.Inputs == nil || doc.Outputs == nil {
		return nil, fmt.Errorf("%w: vertices, edges, inputs and outputs are all required", ErrFormat)
	}

	g := hypergraph.NewGraph()

	// Vertices in ascending name order, keeping their on-disk handles.
	vnames, err := sortedNames(doc.Vertices)
	if err != nil {
		return nil, fmt.Errorf("%w: vertices: %v", ErrFormat, err)
	}
	for _, name := range vnames {
		vd := doc.Vertices[strconv.Itoa(name)]
		if vd.X == nil || vd.Y == nil || vd.Value == nil {
			return nil, fmt.Errorf("%w: vertex %d: x, y and value are required", ErrFormat, name)
		}
		g.AddVertex(*vd.Value,
			hypergraph.WithVertexID(hypergraph.VertexID(name)),
			hypergraph.VertexAt(*vd.X, *vd.Y))
	}

	enames, err := sortedNames(doc.Edges)
	if err != nil {
		return nil, fmt.Errorf("%w: edges: %v", ErrFormat, err)
	}
	for _, name := range enames {
		ed := doc.Edges[strconv.Itoa(name)]
		if ed.S == nil || ed.T == nil || ed.X == nil || ed.Y == nil || ed.Hyper == nil || ed.Value == nil {
			return nil, fmt.Errorf("%w: edge %d: s, t, x, y, hyper and value are required", ErrFormat, name)
		}
		s, err := vertexNames(ed.S)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrFormat, name, err)
		}
		t, err := vertexNames(ed.T)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrFormat, name, err)
		}
		opts := []hypergraph.EdgeOption{
			hypergraph.WithEdgeID(hypergraph.EdgeID(name)),
			hypergraph.EdgeAt(*ed.X, *ed.Y),
		}
		if !*ed.Hyper {
			opts = append(opts, hypergraph.AsWire())
		}
		if _, err := g.AddEdge(*ed.Value, s, t, opts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrFormat, name, err)
		}
	}

	inputs, err := vertexNames(doc.Inputs)
	if err != nil {
		return nil, fmt.Errorf("%w: inputs: %v", ErrFormat, err)
	}
	if err := g.SetInputs(inputs); err != nil {
		return nil, fmt.Errorf("%w: inputs: %v", ErrFormat, err)
	}
	outputs, err := vertexNames(doc.Outputs)
	if err != nil {
		return nil, fmt.Errorf("%w: outputs: %v", ErrFormat, err)
	}
	if err := g.SetOutputs(outputs); err != nil {
		return nil, fmt.Errorf("%w: outputs: %v", ErrFormat, err)
	}

	// A file that decodes but breaks the diagram invariants is fatal too.
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// sortedNames parses and sorts the string-encoded integer keys of m.
func sortedNames[T any](m map[string]T) ([]int, error) {
	names := make([]int, 0, len(m))
	for k := range m {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 || strconv.Itoa(n) != k {
			return nil, fmt.Errorf("bad name %q", k)
		}
		names = append(names, n)
	}
	sort.Ints(names)
	return names, nil
}

func vertexNames(names []string) ([]hypergraph.VertexID, error) {
	out := make([]hypergraph.VertexID, len(names))
	for i, s := range names {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || strconv.Itoa(n) != s {
			return nil, fmt.Errorf("bad vertex name %q", s)
		}
		out[i] = hypergraph.VertexID(n)
	}
	return out, nil
}

// MarshalGraph encodes g as an indented .chyp document. Positions and the
// hyper flag round-trip; the infer flag of compiled wires does not exist
// on disk.
func MarshalGraph(g *hypergraph.Graph) ([]byte, error) {
	doc := graphDoc{
		Vertices: make(map[string]vertexDoc, g.NumVertices()),
		Edges:    make(map[string]edgeDoc, g.NumEdges()),
		Inputs:   []string{},
		Outputs:  []string{},
	}
	for _, v := range g.Vertices() {
		vd, _ := g.Vertex(v)
		x, y, val := vd.X, vd.Y, vd.Value
		doc.Vertices[strconv.Itoa(int(v))] = vertexDoc{X: &x, Y: &y, Value: &val}
	}
	for _, e := range g.Edges() {
		ed, _ := g.Edge(e)
		x, y, val, hyper := ed.X, ed.Y, ed.Value, ed.Hyper
		doc.Edges[strconv.Itoa(int(e))] = edgeDoc{
			S: idStrings(ed.S), T: idStrings(ed.T),
			X: &x, Y: &y, Hyper: &hyper, Value: &val,
		}
	}
	for _, v := range g.Inputs() {
		doc.Inputs = append(doc.Inputs, strconv.Itoa(int(v)))
	}
	for _, v := range g.Outputs() {
		doc.Outputs = append(doc.Outputs, strconv.Itoa(int(v)))
	}
	return json.MarshalIndent(doc, "", "  ")
}

func idStrings(vs []hypergraph.VertexID) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(int(v))
	}
	return out
}

// LoadGraph reads and decodes a .chyp file.
func LoadGraph(path string) (*hypergraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := UnmarshalGraph(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// SaveGraph writes g to path as a .chyp document.
func SaveGraph(path string, g *hypergraph.Graph) error {
	data, err := MarshalGraph(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

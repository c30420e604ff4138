package hypergraph

// VertexID is a stable integer handle of a vertex within one Graph.
// Handles are allocated by a monotone counter and never reused, so a
// surviving vertex keeps its handle across deletions.
type VertexID int

// EdgeID is a stable integer handle of a hyperedge within one Graph.
type EdgeID int

// VData holds the data of a single vertex.
//
// X and Y are cosmetic drawing coordinates; they are preserved by I/O and
// ignored by matching and rewriting. Value is a string label acting as the
// wire type: two vertices unified during composition must agree on it.
type VData struct {
	X, Y  float64
	Value string

	// infer marks wires of special generators (identities, permutations)
	// whose label is adopted from the concrete vertex they are composed
	// with. Never serialized, never consulted by the matcher.
	infer bool

	// inEdges / outEdges index the hyperedges for which this vertex occurs
	// as a target / source. Multiplicity lives in the edge lists themselves.
	inEdges  map[EdgeID]struct{}
	outEdges map[EdgeID]struct{}

	// inIndices / outIndices are the positions at which this vertex occurs
	// in the graph's input / output lists.
	inIndices  map[int]struct{}
	outIndices map[int]struct{}
}

// EData holds the data of a single hyperedge.
//
// The edge acts from the ordered source list S to the ordered target list T;
// arity is determined by the list lengths. Value labels the generator the
// edge is an occurrence of. Hyper is cosmetic (box vs. plain wire drawing).
type EData struct {
	S, T  []VertexID
	X, Y  float64
	Value string
	Hyper bool
}

// Arity returns the (in, out) arity of the edge.
func (d *EData) Arity() (int, int) { return len(d.S), len(d.T) }

// Graph is a directed labeled hypergraph with ordered input and output
// boundary lists. The zero value is not usable; construct with NewGraph.
type Graph struct {
	vdata map[VertexID]*VData
	edata map[EdgeID]*EData

	inputs  []VertexID
	outputs []VertexID

	vindex VertexID // next fresh vertex handle
	eindex EdgeID   // next fresh edge handle
}

// NewGraph returns an empty graph with arity (0, 0).
func NewGraph() *Graph {
	return &Graph{
		vdata: make(map[VertexID]*VData),
		edata: make(map[EdgeID]*EData),
	}
}

// VertexOption configures a vertex at creation time.
type VertexOption func(*vertexConfig)

type vertexConfig struct {
	x, y  float64
	id    VertexID
	hasID bool
	infer bool
}

// VertexAt places the vertex at drawing coordinates (x, y).
func VertexAt(x, y float64) VertexOption {
	return func(c *vertexConfig) { c.x, c.y = x, y }
}

// WithVertexID forces the handle of the new vertex. Used by graph I/O to
// reconstruct a graph with its on-disk names; the internal counter is bumped
// past id so later allocations stay fresh. No check is made that id is unused.
func WithVertexID(id VertexID) VertexOption {
	return func(c *vertexConfig) { c.id, c.hasID = id, true }
}

// withInfer marks the vertex label as inferable during composition.
func withInfer() VertexOption {
	return func(c *vertexConfig) { c.infer = true }
}

// EdgeOption configures a hyperedge at creation time.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	x, y  float64
	id    EdgeID
	hasID bool
	hyper bool
}

// EdgeAt places the hyperedge at drawing coordinates (x, y).
func EdgeAt(x, y float64) EdgeOption {
	return func(c *edgeConfig) { c.x, c.y = x, y }
}

// WithEdgeID forces the handle of the new edge (see WithVertexID).
func WithEdgeID(id EdgeID) EdgeOption {
	return func(c *edgeConfig) { c.id, c.hasID = id, true }
}

// AsWire marks the edge to be drawn as a plain line rather than a box.
func AsWire() EdgeOption {
	return func(c *edgeConfig) { c.hyper = false }
}

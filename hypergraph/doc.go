// Package hypergraph implements directed, labeled hypergraphs with ordered
// boundaries — the combinatorial representation of morphisms in a symmetric
// monoidal category (string diagrams as cospans of hypergraphs).
//
// A Graph owns two arenas keyed by stable integer handles: vertices (VData)
// and hyperedges (EData). Each hyperedge carries an ordered source list and
// an ordered target list of vertex handles; the graph itself carries ordered
// input and output lists, which may repeat vertices. The pair
// (len(inputs), len(outputs)) is the arity of the morphism the graph denotes.
//
// Key features:
//   - Arena+handle storage: cross-references are ints, deletion is O(incidence),
//     handles are never reused within a graph.
//   - Primitive mutation: AddVertex, AddEdge, RemoveVertex, RemoveEdge,
//     SetInputs/SetOutputs, MergeVertices, InsertIdentityAfter.
//   - Compositional construction: Tensor (parallel), Compose (sequential,
//     quotienting outputs onto inputs), Identity, Permutation, Generator.
//   - Invariant checks: IsMonogamous, IsAcyclic, Validate.
//   - Deterministic iteration: Vertices, Edges, InEdges, OutEdges all return
//     handles sorted ascending.
//
// Graphs are mutated only while being built (by the term compiler, by I/O,
// or by a rewrite constructing its result); matching treats them as
// immutable. Nothing in this package synchronizes access: a caller must not
// mutate a graph while an enumeration over it is live.
//
// Errors:
//
//	ErrVertexNotFound  - operation referenced a missing vertex handle.
//	ErrEdgeNotFound    - operation referenced a missing edge handle.
//	ErrBadPermutation  - permutation slice is not a bijection on 0..n-1.
//	ErrCompose         - sequential composition arity or label mismatch (see ComposeError).
//	ErrNotMonogamous   - a vertex breaks the one-in/one-out wire discipline.
//	ErrCyclic          - the edge precedence relation has a directed cycle.
//	ErrMalformed       - an edge or boundary references a missing vertex.
package hypergraph

// Package term defines the abstract syntax of symmetric monoidal terms and
// compiles them to hypergraphs with boundary.
//
// Terms are built from:
//   - Gen / TypedGen: a generator box with fixed arities,
//   - Id: a single identity wire, Id0: the empty diagram,
//   - Perm: an identity wiring permutation (Swap is Perm(1, 0)),
//   - Par: parallel composition (the monoidal product *),
//   - Seq: sequential composition (diagram order ;).
//
// Compile folds a term to a hypergraph using the hypergraph primitives; the
// compiled graph of a well-typed term is always monogamous and acyclic.
// A sequential composition whose types do not meet fails with an error that
// names the offending composition site.
//
// FromGraph performs the converse: it decomposes a monogamous acyclic graph
// into layers of boxes separated by wiring permutations and rebuilds a term
// whose compilation is isomorphic to the input. The decomposition inserts
// explicit identity boxes where a wire crosses a layer, so the round trip
// is up to isomorphism, not syntactic identity.
package term

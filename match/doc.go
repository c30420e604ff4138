// Package match enumerates convex embeddings of one hypergraph into
// another, the search procedure behind rule application.
//
// A Match is a pair of total handle maps (vertices and edges) from a
// domain graph — typically a rule's LHS — into a codomain graph. Every
// match produced by this package satisfies:
//
//  1. label preservation on vertices and edges,
//  2. incidence preservation (the i-th source of an image edge is the
//     image of the i-th source, same for targets),
//  3. injectivity on edges and on interior (non-boundary) vertices,
//  4. gluing only on the boundary (several boundary vertices may share an
//     image),
//  5. convexity: no directed path of the codomain leaves and re-enters the
//     image,
//  6. monogamy preservation: interior image vertices have exactly the
//     degrees of their preimages, so nothing outside the match hangs off
//     the deleted region.
//
// Enumeration is a backtracking search over an explicit stack of partial
// matches. It is lazy — Next does only the work needed to reach the next
// total match — restartable per call, and deterministic: candidates are
// tried in ascending handle order, so for a fixed (domain, codomain) pair
// the sequence of matches is reproducible run to run. A context option
// allows a host to cancel a long enumeration at any yield point.
//
// FindIso specializes the search to ordered-boundary isomorphism testing:
// a total, surjective, boundary-preserving match in both directions.
package match

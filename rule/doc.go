// Package rule defines rewrite rules over hypergraphs with boundary.
//
// A rule is a pair (LHS, RHS) of monogamous acyclic graphs sharing a
// boundary signature: equal input and output arities, with the i-th
// boundary vertices carrying identical labels on both sides. Construction
// validates all of this and additionally requires the rule to be
// left-linear (no repeated vertex in the LHS boundary) — non-left-linear
// rules would make the double-pushout result ambiguous and are rejected
// with ErrNotLeftLinear.
//
// Rules borrow the graphs they are given; they never copy or outlive them.
// Reverse swaps the two sides (revalidating, since the old RHS must be
// left-linear to serve as a LHS), and Refl is the distinguished empty rule
// that matches everywhere and rewrites nothing.
//
// Errors:
//
//	ErrBoundaryArity    - LHS and RHS arities differ.
//	ErrBoundaryMismatch - boundary labels disagree at some index (see BoundaryError).
//	ErrNotLeftLinear    - the LHS boundary repeats a vertex.
package rule

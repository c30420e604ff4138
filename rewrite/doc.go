// Package rewrite applies a rule at a match by double-pushout rewriting.
//
// Given a left-linear rule L = R and a convex match m of L into a graph g,
// DPO deletes the matched edges and the interior of the matched image,
// keeps the gluing vertices (the images of L's boundary), then copies R in
// with fresh handles and plugs its boundary onto the gluing vertices. The
// result is a fresh graph together with the embedding of R that records
// where everything went; g itself is never mutated.
//
// Convexity and monogamy preservation of the match guarantee the pushout
// complement exists, so deletion cannot strand wires; a malformed result
// therefore indicates a programmer error, not a user error.
package rewrite

// Package cospan is the core of an interactive theorem prover for
// symmetric monoidal categories: string diagrams represented as cospans of
// directed, labeled, monogamous acyclic hypergraphs, with convex-subgraph
// matching and double-pushout rewriting on top.
//
// The pieces, leaves first:
//
//	hypergraph/ — arena-of-handles data model with ordered boundaries;
//	              tensor, compose, identity, permutation, generator
//	term/       — SMC term AST, term -> graph compiler, graph -> term
//	              layer decomposition
//	rule/       — validated (LHS, RHS) pairs, reversal, the refl rule
//	match/      — lazy deterministic enumeration of convex embeddings,
//	              ordered-boundary isomorphism
//	rewrite/    — double-pushout rewriting at a match
//	proof/      — step-by-step checking of equational proof chains
//	chypio/     — strict .chyp / .chyprule JSON reading and writing
//	cmd/cospan  — CLI: show, iso, match, rewrite, watch
//
// A quick tour: compile a term, find a match, rewrite.
//
//	lhs, _ := term.Compile(term.Seq(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
//	rhs, _ := term.Compile(term.Gen("h", 1, 1))
//	fuse, _ := rule.New("fuse", lhs, rhs)
//
//	g, _ := term.Compile(term.Seq(term.Gen("f", 1, 1), term.Gen("g", 1, 1)))
//	if m := match.FindRule(fuse, g).First(); m != nil {
//	    h, _ := rewrite.Rewrite(fuse, m)
//	    _ = h // g with f ; g replaced by h
//	}
//
// Graphs are single-owner values: matching reads them without locks,
// rewriting builds fresh graphs, and nothing in the core blocks or spawns
// goroutines. Long match enumerations yield between candidates and accept
// a context for cancellation.
package cospan

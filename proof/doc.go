// Package proof checks equational proofs: chains of terms in which each
// step is justified by rewriting with a named rule.
//
// A chain T0 -> T1 -> ... -> Tn with justifications (rule_i, direction_i)
// is accepted when, for every i, some convex match of rule_i (or of its
// reverse) in the graph of T(i-1) rewrites to a graph isomorphic to the
// graph of T(i). The checker enumerates matches lazily and stops at the
// first isomorphic witness, so well-written proofs are cheap to confirm.
//
// A failing step is reported as a *StepError carrying the step index and
// rule name; "no match" and "no rewrite equals the claimed term" are
// failure results, not internal errors.
package proof

// Package chypio reads and writes graphs and rules in the .chyp and
// .chyprule JSON formats.
//
// A graph document has exactly four fields: "vertices" and "edges" map
// string-encoded non-negative integer names to their data, and "inputs" /
// "outputs" list vertex names in boundary order (repetition allowed). A
// rule document is {"lhs": <graph>, "rhs": <graph>}.
//
// Loading is strict: unknown fields are rejected, every declared field
// must be present and non-null, names must parse as non-negative integers,
// and the decoded graph must pass the full invariant suite (referential
// integrity, monogamy, acyclicity). Rule loading additionally enforces the
// boundary agreement and left-linearity checks of rule.New. Cosmetic x/y
// positions and the hyper flag round-trip unchanged.
//
// Errors:
//
//	ErrFormat - the document violates the format contract (decode errors,
//	            missing fields, bad names, dangling handles).
//
// Invariant violations and rule validation errors are not wrapped in
// ErrFormat; they carry their own sentinels (hypergraph.ErrNotMonogamous,
// hypergraph.ErrCyclic, rule.ErrBoundaryArity, ...).
package chypio

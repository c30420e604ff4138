package rule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cospan/hypergraph"
)

var (
	// ErrBoundaryArity indicates the LHS and RHS boundary arities differ.
	ErrBoundaryArity = errors.New("rule: boundary arity mismatch")

	// ErrBoundaryMismatch indicates the boundary labels disagree at some
	// index. Returned wrapped inside a *BoundaryError.
	ErrBoundaryMismatch = errors.New("rule: boundary label mismatch")

	// ErrNotLeftLinear indicates the LHS boundary embeds non-injectively.
	// Such rules have no unique pushout complement and are out of scope.
	ErrNotLeftLinear = errors.New("rule: not left-linear")
)

// BoundaryError reports disagreeing boundary labels between LHS and RHS.
type BoundaryError struct {
	Side  string // "input" or "output"
	Index int
	LHS   string
	RHS   string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("rule: boundary label mismatch at %s %d: %q vs %q",
		e.Side, e.Index, e.LHS, e.RHS)
}

// Unwrap makes errors.Is(err, ErrBoundaryMismatch) hold.
func (e *BoundaryError) Unwrap() error { return ErrBoundaryMismatch }

// Rule is a validated rewrite rule. The zero value is not usable;
// construct with New or Refl.
type Rule struct {
	name string
	lhs  *hypergraph.Graph
	rhs  *hypergraph.Graph

	arityIn  int
	arityOut int
}

// New validates and returns the rule lhs = rhs. Both graphs must satisfy
// the hypergraph invariants, share their boundary signature, and the LHS
// boundary must embed injectively (left-linearity). The rule borrows both
// graphs; the caller must not mutate them while the rule is in use.
func New(name string, lhs, rhs *hypergraph.Graph) (*Rule, error) {
	li, lo := lhs.Arity()
	ri, ro := rhs.Arity()
	if li != ri || lo != ro {
		return nil, fmt.Errorf("%w: lhs %d->%d, rhs %d->%d", ErrBoundaryArity, li, lo, ri, ro)
	}

	if err := boundaryLabels("input", lhs.Domain(), rhs.Domain()); err != nil {
		return nil, err
	}
	if err := boundaryLabels("output", lhs.Codomain(), rhs.Codomain()); err != nil {
		return nil, err
	}

	if err := lhs.Validate(); err != nil {
		return nil, fmt.Errorf("rule %s: lhs: %w", name, err)
	}
	if err := rhs.Validate(); err != nil {
		return nil, fmt.Errorf("rule %s: rhs: %w", name, err)
	}

	if !leftLinear(lhs) {
		return nil, fmt.Errorf("%w: %s", ErrNotLeftLinear, name)
	}

	return &Rule{name: name, lhs: lhs, rhs: rhs, arityIn: li, arityOut: lo}, nil
}

func boundaryLabels(side string, l, r []string) error {
	for i := range l {
		if l[i] != r[i] {
			return &BoundaryError{Side: side, Index: i, LHS: l[i], RHS: r[i]}
		}
	}
	return nil
}

// leftLinear reports whether no vertex repeats across the LHS boundary.
func leftLinear(g *hypergraph.Graph) bool {
	seen := make(map[hypergraph.VertexID]struct{})
	for _, v := range g.Inputs() {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	for _, v := range g.Outputs() {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Refl returns the distinguished empty rule: empty LHS equals empty RHS.
// It matches everywhere and rewriting by it changes nothing.
func Refl() *Rule {
	return &Rule{name: "refl", lhs: hypergraph.NewGraph(), rhs: hypergraph.NewGraph()}
}

// Name returns the rule name.
func (r *Rule) Name() string { return r.name }

// LHS returns the left-hand side. Borrowed: do not mutate.
func (r *Rule) LHS() *hypergraph.Graph { return r.lhs }

// RHS returns the right-hand side. Borrowed: do not mutate.
func (r *Rule) RHS() *hypergraph.Graph { return r.rhs }

// Arity returns the boundary arity shared by both sides.
func (r *Rule) Arity() (in, out int) { return r.arityIn, r.arityOut }

// IsLeftLinear reports whether the LHS boundary embeds injectively.
// Always true for rules built by New; Refl is trivially left-linear.
func (r *Rule) IsLeftLinear() bool { return leftLinear(r.lhs) }

// Reverse returns the rule applied right-to-left. The swapped rule is
// revalidated, so reversing fails if the RHS boundary is non-injective.
// The reversed name toggles a "-" prefix.
func (r *Rule) Reverse() (*Rule, error) {
	name := "-" + r.name
	if len(r.name) > 0 && r.name[0] == '-' {
		name = r.name[1:]
	}
	return New(name, r.rhs, r.lhs)
}

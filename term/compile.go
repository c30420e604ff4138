package term

import (
	"fmt"

	"github.com/katalvlaran/cospan/hypergraph"
)

// Compile folds the term into a hypergraph with boundary. Generator terms
// become single hyperedges, identities and permutations become pure wiring,
// Par tensors and Seq composes. A failed sequential composition is reported
// with the offending subterm; the error wraps hypergraph.ErrCompose so the
// caller can test for the type-mismatch class.
func Compile(t Term) (*hypergraph.Graph, error) {
	switch t := t.(type) {
	case GenTerm:
		return hypergraph.TypedGenerator(t.Name, t.Domain, t.Codomain), nil

	case IdTerm:
		return hypergraph.Identity(1), nil

	case Id0Term:
		return hypergraph.NewGraph(), nil

	case PermTerm:
		g, err := hypergraph.Permutation(t.P)
		if err != nil {
			return nil, fmt.Errorf("term: compile %s: %w", t, err)
		}
		return g, nil

	case ParTerm:
		l, err := Compile(t.L)
		if err != nil {
			return nil, err
		}
		r, err := Compile(t.R)
		if err != nil {
			return nil, err
		}
		l.TensorWith(r)
		return l, nil

	case SeqTerm:
		l, err := Compile(t.L)
		if err != nil {
			return nil, err
		}
		r, err := Compile(t.R)
		if err != nil {
			return nil, err
		}
		if err := l.ComposeWith(r); err != nil {
			return nil, fmt.Errorf("term: compile %q: %w", t.String(), err)
		}
		return l, nil

	default:
		return nil, fmt.Errorf("term: unknown term %T", t)
	}
}

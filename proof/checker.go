package proof

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cospan/hypergraph"
	"github.com/katalvlaran/cospan/match"
	"github.com/katalvlaran/cospan/rewrite"
	"github.com/katalvlaran/cospan/rule"
	"github.com/katalvlaran/cospan/term"
)

// ErrNoMatch indicates no rewrite by the step's rule produces the claimed
// next term: either the rule matched nowhere, or no match's result was
// isomorphic to it.
var ErrNoMatch = errors.New("proof: rule does not apply")

// StepError reports the first failing step of a chain.
type StepError struct {
	Index    int    // 1-based step number
	RuleName string // as written, including a "-" prefix for reversed use
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("proof: step %d (%s): %v", e.Index, e.RuleName, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Step is one link of a chain: rewrite by Rule (reversed if Reverse) must
// yield Target.
type Step struct {
	Rule    *rule.Rule
	Reverse bool
	Target  term.Term
}

// ruleName renders the justification the way it was written.
func (s Step) ruleName() string {
	if s.Reverse {
		return "-" + s.Rule.Name()
	}
	return s.Rule.Name()
}

// Option configures a checker run.
type Option func(*options)

type options struct {
	ctx context.Context
	log *zap.Logger
}

// WithContext cancels match enumeration between candidates.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches a progress logger; zap.NewNop() by default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Check verifies the chain starting at start. It returns the compiled
// graph of every position in the chain (len(steps)+1 graphs) on success.
// The first failing step aborts the run with a *StepError.
func Check(start term.Term, steps []Step, opts ...Option) ([]*hypergraph.Graph, error) {
	o := options{ctx: context.Background(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	prev, err := term.Compile(start)
	if err != nil {
		return nil, err
	}
	graphs := make([]*hypergraph.Graph, 0, len(steps)+1)
	graphs = append(graphs, prev)

	for i, step := range steps {
		idx := i + 1

		r := step.Rule
		if step.Reverse {
			if r, err = r.Reverse(); err != nil {
				return graphs, &StepError{Index: idx, RuleName: step.ruleName(), Err: err}
			}
		}

		claimed, err := term.Compile(step.Target)
		if err != nil {
			return graphs, &StepError{Index: idx, RuleName: step.ruleName(), Err: err}
		}

		if err := checkStep(r, prev, claimed, o); err != nil {
			return graphs, &StepError{Index: idx, RuleName: step.ruleName(), Err: err}
		}

		o.log.Info("step verified",
			zap.Int("step", idx),
			zap.String("rule", step.ruleName()),
			zap.String("term", step.Target.String()))

		prev = claimed
		graphs = append(graphs, claimed)
	}
	return graphs, nil
}

// checkStep accepts on the first match whose rewrite is isomorphic to the
// claimed graph.
func checkStep(r *rule.Rule, g, claimed *hypergraph.Graph, o options) error {
	ms := match.FindRule(r, g, match.WithContext(o.ctx), match.WithLogger(o.log))
	for {
		m, ok := ms.Next()
		if !ok {
			if err := ms.Err(); err != nil {
				return err
			}
			return ErrNoMatch
		}
		h, err := rewrite.Rewrite(r, m)
		if err != nil {
			return err
		}
		if match.Iso(h, claimed, match.WithContext(o.ctx)) {
			return nil
		}
	}
}

package match

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/cospan/hypergraph"
	"github.com/katalvlaran/cospan/rule"
)

// Option configures an enumeration started by Find, FindRule, or FindIso.
type Option func(*options)

type options struct {
	ctx context.Context
	log *zap.Logger
}

func defaultOptions() options {
	return options{ctx: context.Background(), log: zap.NewNop()}
}

// WithContext enables cancellation of the enumeration. After the context
// is done, Next returns false and Err reports the cause.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches a debug logger to the search. Every rejected
// candidate is logged at debug level; zap.NewNop() is the default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Matches is a lazy, restartable enumeration of total convex matches.
// It is not safe for concurrent use; the underlying graphs must not be
// mutated while the enumeration is live.
type Matches struct {
	stack []*Match
	opts  options
	err   error
}

// Find starts an enumeration of all convex embeddings of dom into cod.
func Find(dom, cod *hypergraph.Graph, opts ...Option) *Matches {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	seed := New(dom, cod)
	seed.log = o.log
	return &Matches{stack: []*Match{seed}, opts: o}
}

// FindRule starts an enumeration of the embeddings of r's left-hand side
// into g — the candidate sites at which r can rewrite g.
func FindRule(r *rule.Rule, g *hypergraph.Graph, opts ...Option) *Matches {
	return Find(r.LHS(), g, opts...)
}

// Next returns the next total convex match, or false when the enumeration
// is exhausted or canceled. Work is pay-as-you-go: stopping after the
// first match costs only the search up to that match.
func (ms *Matches) Next() (*Match, bool) {
	for len(ms.stack) > 0 {
		select {
		case <-ms.opts.ctx.Done():
			ms.err = ms.opts.ctx.Err()
			ms.stack = nil
			return nil, false
		default:
		}

		m := ms.stack[len(ms.stack)-1]
		ms.stack = ms.stack[:len(ms.stack)-1]

		if m.IsTotal() {
			if !m.IsConvex() {
				ms.opts.log.Debug("match rejected: not convex")
				continue
			}
			ms.opts.log.Debug("match found", zap.String("match", m.String()))
			return m, true
		}
		// Push in reverse so the lowest-handle candidate is popped first.
		next := m.more()
		for i := len(next) - 1; i >= 0; i-- {
			ms.stack = append(ms.stack, next[i])
		}
	}
	return nil, false
}

// Err returns the cancellation cause, if the enumeration was canceled.
func (ms *Matches) Err() error { return ms.err }

// First returns the first match, or nil if there is none.
func (ms *Matches) First() *Match {
	m, ok := ms.Next()
	if !ok {
		return nil
	}
	return m
}

// All drains the enumeration and returns every remaining match.
func (ms *Matches) All() []*Match {
	var out []*Match
	for {
		m, ok := ms.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

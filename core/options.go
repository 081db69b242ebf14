package core

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation between visitation events.
	Ctx context.Context

	// OnEnqueue is called when a cell enters the frontier or has its
	// frontier entry improved. Receives the cell and its cost so far.
	OnEnqueue func(at gridgraph.Coord, cost int)

	// OnVisit is called exactly once per settled cell. If it returns an
	// error, the search aborts and propagates that error.
	OnVisit func(at gridgraph.Coord, cost int) error

	// MaxVisits, if > 0, caps the number of settled cells.
	// A value of 0 explicitly disables the limit.
	MaxVisits int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no visit limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Coord, int) {},
		OnVisit:   func(gridgraph.Coord, int) error { return nil },
		MaxVisits: 0,
	}
}

// Apply builds Options from defaults plus opts, returning the first
// recorded option violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on frontier insertion.
func WithOnEnqueue(fn func(at gridgraph.Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on every visitation event;
// returning an error from this callback stops the search.
func WithOnVisit(fn func(at gridgraph.Coord, cost int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxVisits caps how many cells may be settled.
//
//	n > 0: limit to n visits
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

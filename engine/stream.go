package engine

import (
	"context"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// EventKind distinguishes settle events from final-path events.
type EventKind string

const (
	// KindVisit marks a cell the moment it is settled.
	KindVisit EventKind = "visit"
	// KindPath marks a cell of the final path, emitted start first after
	// the last visit.
	KindPath EventKind = "path"
)

// Event is one renderable step of a search.
// Step counts events of the same kind from zero.
type Event struct {
	Kind EventKind       `json:"kind"`
	At   gridgraph.Coord `json:"at"`
	Step int             `json:"step"`
	Cost int             `json:"cost"`
}

// Stream runs one search in its own goroutine and publishes its events on
// an unbuffered channel, so a slow consumer holds the search back without
// changing its order. Consumers must drain Events or cancel the context
// passed to Start; Wait returns once the search goroutine has exited.
type Stream struct {
	events chan Event
	done   chan struct{}
	res    *core.Result
	err    error
}

// Start launches algo on a snapshot of g. The snapshot isolates the search
// from edits the caller makes to g while events are being consumed.
// Stream installs its own OnVisit hook; any OnVisit in opts is replaced.
func Start(
	ctx context.Context,
	g *gridgraph.Grid,
	start, goal gridgraph.Coord,
	algo Algorithm,
	opts ...core.Option,
) *Stream {
	s := &Stream{
		events: make(chan Event),
		done:   make(chan struct{}),
	}
	var snapshot *gridgraph.Grid
	if g != nil {
		snapshot = g.Clone()
	}

	go func() {
		defer close(s.done)
		defer close(s.events)

		step := 0
		visit := func(at gridgraph.Coord, cost int) error {
			ev := Event{Kind: KindVisit, At: at, Step: step, Cost: cost}
			step++
			return s.send(ctx, ev)
		}
		all := make([]core.Option, 0, len(opts)+1)
		all = append(append(all, opts...), core.WithOnVisit(visit))
		s.res, s.err = Run(ctx, snapshot, start, goal, algo, all...)
		if s.err != nil {
			return
		}
		for i, at := range s.res.Path {
			if err := s.send(ctx, Event{Kind: KindPath, At: at, Step: i, Cost: i}); err != nil {
				s.err = err
				return
			}
		}
	}()

	return s
}

// send delivers ev or gives up when ctx is done.
func (s *Stream) send(ctx context.Context, ev Event) error {
	select {
	case s.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the event channel; it is closed when the search ends.
func (s *Stream) Events() <-chan Event { return s.events }

// Done is closed once the result is available.
func (s *Stream) Done() <-chan struct{} { return s.done }

// Wait blocks until the search goroutine exits and returns its outcome.
// Call it after Events is drained or the context is cancelled.
func (s *Stream) Wait() (*core.Result, error) {
	<-s.done
	return s.res, s.err
}

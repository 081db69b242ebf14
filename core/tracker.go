package core

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Tracker records the externally observable side of a search: it checks
// cancellation, enforces MaxVisits, appends to Result.Order and runs hooks.
// Each strategy owns one Tracker per call; it is not safe for concurrent use.
type Tracker struct {
	opts Options
	res  *Result
}

// NewTracker returns a Tracker with room for sizeHint visits.
func NewTracker(opts Options, sizeHint int) *Tracker {
	return &Tracker{
		opts: opts,
		res:  &Result{Order: make([]gridgraph.Coord, 0, sizeHint)},
	}
}

// Visit emits the visitation event for a settled cell. It returns the
// context error if the search was cancelled, ErrVisitLimit when the budget
// is spent, or the wrapped OnVisit error. No event is recorded on error.
func (t *Tracker) Visit(at gridgraph.Coord, cost int) error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	if t.opts.MaxVisits > 0 && len(t.res.Order) >= t.opts.MaxVisits {
		return fmt.Errorf("%w: %d", ErrVisitLimit, t.opts.MaxVisits)
	}

	t.res.Order = append(t.res.Order, at)
	if err := t.opts.OnVisit(at, cost); err != nil {
		return fmt.Errorf("core: OnVisit error at %v: %w", at, err)
	}
	return nil
}

// Enqueue reports a frontier insertion to OnEnqueue.
func (t *Tracker) Enqueue(at gridgraph.Coord, cost int) {
	t.opts.OnEnqueue(at, cost)
}

// Found completes the result with a path.
func (t *Tracker) Found(p Path) (*Result, error) {
	t.res.Path = p
	t.res.Cost = p.Edges()
	t.res.Found = true
	return t.res, nil
}

// NotFound completes the result as a failed search and returns ErrNoPath.
func (t *Tracker) NotFound() (*Result, error) {
	t.res.Path = nil
	t.res.Found = false
	return t.res, ErrNoPath
}

// Abort returns the partial result alongside err.
func (t *Tracker) Abort(err error) (*Result, error) {
	return t.res, err
}

// Package engine is the single entry point the presentation layer calls:
// Run dispatches (grid, start, goal, algorithm) to one of the bfs,
// dijkstra or astar strategies, and Start wraps the same call in a
// channel of visitation events for callers that render as they consume.
//
// The engine holds no state between calls and never sleeps; pacing is the
// consumer's job (see package playback).
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// Run executes algo on g from start to goal. ctx cancels the search between
// visitation events and supplies the logger (see internal/ctxlog).
//
// A failed search returns a non-nil Result with Found=false and an error
// matching core.ErrNoPath; callers should treat that as a normal outcome.
func Run(
	ctx context.Context,
	g *gridgraph.Grid,
	start, goal gridgraph.Coord,
	algo Algorithm,
	opts ...core.Option,
) (*core.Result, error) {
	search, err := algo.Strategy()
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("algorithm", algo.String(), "start", start.String(), "goal", goal.String())
	logger.Debug("Search started.")

	began := time.Now()
	res, err := search(g, start, goal, append([]core.Option{core.WithContext(ctx)}, opts...)...)
	elapsed := time.Since(began)

	switch {
	case err == nil:
		logger.Debug("Search found a path.", "visited", len(res.Order), "cost", res.Cost, "elapsed", elapsed)
	case errors.Is(err, core.ErrNoPath):
		logger.Debug("Search found no path.", "visited", len(res.Order), "elapsed", elapsed)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Debug("Search abandoned.", "error", err)
	default:
		logger.Warn("Search failed.", "error", err)
	}
	return res, err
}

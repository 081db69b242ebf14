// Package core defines the primitives shared by every grid search strategy:
// the transient search Node, the Path and Result returned to callers,
// functional Options with visitation hooks, and the sentinel errors.
//
// What
//
//   - Node: coordinate, accumulated cost G, priority F and a predecessor link.
//   - Path: ordered coordinates from start to goal inclusive.
//   - Result: visit Order, Path, Cost and Found flag of one search call.
//   - Reconstruct / FromPredecessors: rebuild a Path from backlinks.
//   - Tracker: records visitation events, enforces cancellation and limits.
//
// Hooks
//
//	OnEnqueue runs when a cell first enters (or is re-prioritised in) the frontier.
//	OnVisit   runs exactly once per settled cell, in settle order; returning
//	          an error aborts the search and the error is wrapped.
//
// A presentation layer that animates a search paces itself inside OnVisit
// (or by consuming engine.Stream); the strategies never sleep.
//
// Errors
//
//   - ErrNoPath            frontier exhausted before the goal was settled.
//   - ErrGridNil           nil grid.
//   - ErrOutOfBounds       start or goal outside the grid.
//   - ErrOptionViolation   invalid Option (e.g. negative visit limit).
//   - ErrVisitLimit        WithMaxVisits budget exhausted.
//
// ErrNoPath is an expected outcome, not a fault: strategies return it
// together with a non-nil Result whose Found is false.
package core

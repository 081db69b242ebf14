package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// mustGrid parses a layout or fails the test.
func mustGrid(t *testing.T, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.Search(nil, gridgraph.C(0, 0), gridgraph.C(0, 0)); !errors.Is(err, core.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := mustGrid(t, "S.", ".G")
	if _, err := bfs.Search(g, gridgraph.C(2, 0), g.Goal); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("off-grid start: want ErrOutOfBounds, got %v", err)
	}
	if _, err := bfs.Search(g, g.Start, g.Goal, core.WithMaxVisits(-1)); !errors.Is(err, core.ErrOptionViolation) {
		t.Errorf("negative limit: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_VisitOrder pins FIFO order on an open 3×3 grid.
func TestBFS_VisitOrder(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"...",
		"..G",
	)
	res, err := bfs.Search(g, g.Start, g.Goal)
	require.NoError(t, err)

	wantOrder := []gridgraph.Coord{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}, {2, 1}, {1, 2}, {2, 2}}
	assert.Equal(t, wantOrder, res.Order)
	assert.Equal(t, core.Path{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, res.Path)
	assert.Equal(t, 4, res.Cost)
	assert.True(t, res.Found)
}

// TestBFS_StartIsGoal returns a one-cell path after a single visit.
func TestBFS_StartIsGoal(t *testing.T) {
	g := mustGrid(t, "...", "...")
	at := gridgraph.C(1, 1)
	res, err := bfs.Search(g, at, at)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{at}, res.Order)
	assert.Equal(t, core.Path{at}, res.Path)
	assert.Equal(t, 0, res.Cost)
}

// TestBFS_WalledOff visits exactly the start's component, then fails.
func TestBFS_WalledOff(t *testing.T) {
	g := mustGrid(t,
		"S..",
		"###",
		"..G",
	)
	res, err := bfs.Search(g, g.Start, g.Goal)
	assert.ErrorIs(t, err, core.ErrNoPath)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.ElementsMatch(t, g.Reachable(g.Start), res.Order)
}

// TestBFS_WalledEndpoint never expands a wall, even as start.
func TestBFS_WalledEndpoint(t *testing.T) {
	g := mustGrid(t, "S.", ".G")
	require.NoError(t, g.SetWall(g.Start, true))

	var visits int
	res, err := bfs.Search(g, g.Start, g.Goal, core.WithOnVisit(func(gridgraph.Coord, int) error {
		visits++
		return nil
	}))
	assert.ErrorIs(t, err, core.ErrNoPath)
	assert.Empty(t, res.Order)
	assert.Zero(t, visits)
}

// TestBFS_HooksAndDepth checks that OnVisit sees depths and OnEnqueue sees discoveries.
func TestBFS_HooksAndDepth(t *testing.T) {
	g := mustGrid(t, "S...G")
	var depths []int
	var enqueued []gridgraph.Coord
	_, err := bfs.Search(g, g.Start, g.Goal,
		core.WithOnVisit(func(_ gridgraph.Coord, d int) error {
			depths = append(depths, d)
			return nil
		}),
		core.WithOnEnqueue(func(at gridgraph.Coord, _ int) {
			enqueued = append(enqueued, at)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, depths)
	assert.Len(t, enqueued, 5)
}

// TestBFS_Cancellation stops between two visitation events.
func TestBFS_Cancellation(t *testing.T) {
	g, err := gridgraph.NewGrid(10, 10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	count := 0
	res, err := bfs.Search(g, g.Start, g.Goal,
		core.WithContext(ctx),
		core.WithOnVisit(func(gridgraph.Coord, int) error {
			count++
			if count == 3 {
				cancel()
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Order, 3)
}

// TestBFS_HookError aborts and wraps the hook error.
func TestBFS_HookError(t *testing.T) {
	g := mustGrid(t, "S..G")
	stop := errors.New("stop")
	_, err := bfs.Search(g, g.Start, g.Goal, core.WithOnVisit(func(at gridgraph.Coord, _ int) error {
		if at == gridgraph.C(0, 1) {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

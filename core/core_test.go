package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestReconstruct follows Prev links and reverses them.
func TestReconstruct(t *testing.T) {
	a := &core.Node{At: gridgraph.C(0, 0)}
	b := &core.Node{At: gridgraph.C(0, 1), G: 1, Prev: a}
	c := &core.Node{At: gridgraph.C(1, 1), G: 2, Prev: b}

	p := core.Reconstruct(c)
	assert.Equal(t, core.Path{{0, 0}, {0, 1}, {1, 1}}, p)
	assert.Equal(t, 2, p.Edges())

	assert.Equal(t, core.Path{{0, 0}}, core.Reconstruct(a), "start alone is a zero-edge path")
	assert.Nil(t, core.Reconstruct(nil))
}

// TestFromPredecessors covers reachable, trivial and unreachable goals.
func TestFromPredecessors(t *testing.T) {
	prev := map[gridgraph.Coord]gridgraph.Coord{
		{0, 1}: {0, 0},
		{0, 2}: {0, 1},
		{1, 2}: {0, 2},
	}
	start := gridgraph.C(0, 0)

	assert.Equal(t, core.Path{{0, 0}, {0, 1}, {0, 2}, {1, 2}}, core.FromPredecessors(prev, start, gridgraph.C(1, 2)))
	assert.Equal(t, core.Path{{0, 0}}, core.FromPredecessors(prev, start, start))
	assert.Nil(t, core.FromPredecessors(prev, start, gridgraph.C(5, 5)))

	// a cycle that never reaches start must terminate
	loop := map[gridgraph.Coord]gridgraph.Coord{{1, 1}: {1, 2}, {1, 2}: {1, 1}}
	assert.Nil(t, core.FromPredecessors(loop, start, gridgraph.C(1, 1)))
}

// TestPath_Validate rejects walls, off-grid cells and jumps.
func TestPath_Validate(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"..",
		"#.",
	})
	require.NoError(t, err)

	assert.NoError(t, core.Path{{0, 0}, {0, 1}, {1, 1}}.Validate(g))
	assert.Error(t, core.Path{{0, 0}, {1, 0}}.Validate(g), "wall")
	assert.Error(t, core.Path{{0, 0}, {1, 1}}.Validate(g), "diagonal")
	assert.Error(t, core.Path{{0, 1}, {0, 2}}.Validate(g), "off-grid")
	assert.Equal(t, 0, core.Path(nil).Edges())
}

// TestValidate checks the shared input validation.
func TestValidate(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, core.Validate(nil, g.Start, g.Goal), core.ErrGridNil)
	assert.ErrorIs(t, core.Validate(g, gridgraph.C(3, 0), g.Goal), core.ErrOutOfBounds)
	assert.NoError(t, core.Validate(g, g.Start, g.Goal))
}

// TestOptions covers defaults and violations.
func TestOptions(t *testing.T) {
	o, err := core.Apply()
	require.NoError(t, err)
	assert.NotNil(t, o.Ctx)
	assert.NoError(t, o.OnVisit(gridgraph.C(0, 0), 0))

	_, err = core.Apply(core.WithMaxVisits(-1))
	assert.ErrorIs(t, err, core.ErrOptionViolation)

	// nil hooks and contexts are ignored
	o, err = core.Apply(core.WithOnVisit(nil), core.WithOnEnqueue(nil), core.WithContext(nil))
	require.NoError(t, err)
	assert.NotNil(t, o.OnVisit)
	assert.NotNil(t, o.Ctx)
}

// TestTracker covers event recording, limits, cancellation and hook errors.
func TestTracker(t *testing.T) {
	var seen []gridgraph.Coord
	o, err := core.Apply(
		core.WithMaxVisits(2),
		core.WithOnVisit(func(at gridgraph.Coord, _ int) error {
			seen = append(seen, at)
			return nil
		}),
	)
	require.NoError(t, err)

	tr := core.NewTracker(o, 4)
	require.NoError(t, tr.Visit(gridgraph.C(0, 0), 0))
	require.NoError(t, tr.Visit(gridgraph.C(0, 1), 1))
	assert.ErrorIs(t, tr.Visit(gridgraph.C(0, 2), 2), core.ErrVisitLimit)
	assert.Equal(t, []gridgraph.Coord{{0, 0}, {0, 1}}, seen)

	res, err := tr.NotFound()
	assert.ErrorIs(t, err, core.ErrNoPath)
	assert.False(t, res.Found)
	assert.Len(t, res.Order, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, _ = core.Apply(core.WithContext(ctx))
	assert.ErrorIs(t, core.NewTracker(o, 0).Visit(gridgraph.C(0, 0), 0), context.Canceled)

	boom := errors.New("boom")
	o, _ = core.Apply(core.WithOnVisit(func(gridgraph.Coord, int) error { return boom }))
	assert.ErrorIs(t, core.NewTracker(o, 0).Visit(gridgraph.C(0, 0), 0), boom)
}

package engine_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

var all = []engine.Algorithm{engine.BFS, engine.Dijkstra, engine.AStar}

// randomGrid builds a deterministic grid with roughly density walls.
func randomGrid(t *testing.T, rows, cols int, density float64, seed int64) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(rows, cols)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if r.Float64() < density {
				require.NoError(t, g.SetWall(gridgraph.C(row, col), true))
			}
		}
	}
	require.NoError(t, g.SetWall(g.Start, false))
	require.NoError(t, g.SetWall(g.Goal, false))
	return g
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]engine.Algorithm{
		"bfs":       engine.BFS,
		"BFS":       engine.BFS,
		" dijkstra": engine.Dijkstra,
		"astar":     engine.AStar,
		"A*":        engine.AStar,
		"a-star":    engine.AStar,
		"":          engine.DefaultAlgorithm,
	}
	for in, want := range cases {
		got, err := engine.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := engine.ParseAlgorithm("dfs")
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	var a engine.Algorithm
	require.NoError(t, a.Set("Dijkstra"))
	assert.Equal(t, engine.Dijkstra, a)
	assert.Equal(t, []engine.Algorithm{engine.AStar, engine.BFS, engine.Dijkstra}, engine.Algorithms())
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)
	_, err = engine.Run(context.Background(), g, g.Start, g.Goal, engine.Algorithm("dfs"))
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

// TestRun_OpenGridManhattan: with no walls every algorithm's path length
// equals the Manhattan distance.
func TestRun_OpenGridManhattan(t *testing.T) {
	g, err := gridgraph.NewGrid(7, 9)
	require.NoError(t, err)
	pairs := [][2]gridgraph.Coord{
		{{0, 0}, {6, 8}},
		{{3, 4}, {3, 4}},
		{{6, 0}, {0, 8}},
		{{2, 7}, {5, 1}},
	}
	for _, algo := range all {
		for _, p := range pairs {
			res, err := engine.Run(context.Background(), g, p[0], p[1], algo)
			require.NoError(t, err, "%s %v→%v", algo, p[0], p[1])
			assert.Equal(t, gridgraph.Manhattan(p[0], p[1]), res.Cost, "%s %v→%v", algo, p[0], p[1])
			assert.NoError(t, res.Path.Validate(g))
		}
	}
}

// TestRun_FiveByFive is the canonical 5×5 example: 8 edges, 9 cells.
func TestRun_FiveByFive(t *testing.T) {
	g, err := gridgraph.NewGrid(5, 5)
	require.NoError(t, err)
	for _, algo := range all {
		res, err := engine.Run(context.Background(), g, gridgraph.C(0, 0), gridgraph.C(4, 4), algo)
		require.NoError(t, err)
		assert.Equal(t, 8, res.Cost, algo.String())
		assert.Len(t, res.Path, 9, algo.String())
	}
}

// TestRun_AgreeOnRandomGrids checks that all strategies agree on path
// length (or on failure), paths are continuous and wall-free, and failed
// searches visit exactly the start's component.
func TestRun_AgreeOnRandomGrids(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := randomGrid(t, 12, 15, 0.3, seed)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			reachable := g.Connected(g.Start, g.Goal)
			var costs []int
			for _, algo := range all {
				res, err := engine.Run(context.Background(), g, g.Start, g.Goal, algo)
				require.NotNil(t, res)
				if !reachable {
					assert.ErrorIs(t, err, core.ErrNoPath, algo.String())
					assert.ElementsMatch(t, g.Reachable(g.Start), res.Order, algo.String())
					continue
				}
				require.NoError(t, err, algo.String())
				assert.NoError(t, res.Path.Validate(g), algo.String())
				assert.Equal(t, g.Start, res.Path[0])
				assert.Equal(t, g.Goal, res.Path[len(res.Path)-1])
				assert.Equal(t, g.Goal, res.Order[len(res.Order)-1], "goal is the last visit")
				assertUnique(t, res.Order)
				costs = append(costs, res.Cost)
			}
			for _, c := range costs {
				assert.Equal(t, costs[0], c)
			}
		})
	}
}

// TestRun_Deterministic: two runs on an unchanged grid are identical.
func TestRun_Deterministic(t *testing.T) {
	g := randomGrid(t, 20, 20, 0.25, 7)
	for _, algo := range all {
		a, errA := engine.Run(context.Background(), g, g.Start, g.Goal, algo)
		b, errB := engine.Run(context.Background(), g, g.Start, g.Goal, algo)
		assert.Equal(t, errA, errB)
		assert.Equal(t, a.Order, b.Order, algo.String())
		assert.Equal(t, a.Path, b.Path, algo.String())
	}
}

// TestRun_WallRow: a full-row wall yields NoPathFound for all three.
func TestRun_WallRow(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"S.....",
		"......",
		"######",
		"......",
		".....G",
	})
	require.NoError(t, err)
	for _, algo := range all {
		res, err := engine.Run(context.Background(), g, g.Start, g.Goal, algo)
		assert.True(t, errors.Is(err, core.ErrNoPath), algo.String())
		assert.Len(t, res.Order, 12, algo.String())
	}
}

// TestRun_StartIsGoal emits exactly one visitation event.
func TestRun_StartIsGoal(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 4)
	require.NoError(t, err)
	at := gridgraph.C(1, 2)
	for _, algo := range all {
		events := 0
		res, err := engine.Run(context.Background(), g, at, at, algo,
			core.WithOnVisit(func(gridgraph.Coord, int) error { events++; return nil }))
		require.NoError(t, err)
		assert.Equal(t, 1, events, algo.String())
		assert.Equal(t, core.Path{at}, res.Path)
		assert.Zero(t, res.Cost)
	}
}

// TestRun_Logs writes debug records through the context logger.
func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)
	_, err = engine.Run(ctx, g, g.Start, g.Goal, engine.BFS)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "algorithm=bfs")
	assert.Contains(t, buf.String(), "cost=4")
}

func assertUnique(t *testing.T, cells []gridgraph.Coord) {
	t.Helper()
	seen := make(map[gridgraph.Coord]bool, len(cells))
	for _, c := range cells {
		assert.False(t, seen[c], "cell %v visited twice", c)
		seen[c] = true
	}
}

package playback_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
)

func feed(evs ...engine.Event) <-chan engine.Event {
	ch := make(chan engine.Event, len(evs))
	for _, ev := range evs {
		ch <- ev
	}
	close(ch)
	return ch
}

func TestPlay_Unpaced(t *testing.T) {
	in := []engine.Event{
		{Kind: engine.KindVisit, At: gridgraph.C(0, 0)},
		{Kind: engine.KindVisit, At: gridgraph.C(0, 1), Step: 1},
		{Kind: engine.KindPath, At: gridgraph.C(0, 0)},
		{Kind: engine.KindPath, At: gridgraph.C(0, 1), Step: 1},
	}
	var got []engine.Event
	err := playback.Play(context.Background(), feed(in...), playback.Pacing{}, func(ev engine.Event) error {
		got = append(got, ev)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestPlay_Paced(t *testing.T) {
	in := make([]engine.Event, 0, 6)
	for i := 0; i < 4; i++ {
		in = append(in, engine.Event{Kind: engine.KindVisit, At: gridgraph.C(0, i), Step: i})
	}
	in = append(in, engine.Event{Kind: engine.KindPath, At: gridgraph.C(0, 0)})
	in = append(in, engine.Event{Kind: engine.KindPath, At: gridgraph.C(0, 1), Step: 1})

	pace := playback.Pacing{Visit: 5 * time.Millisecond, Path: 10 * time.Millisecond}
	n := 0
	began := time.Now()
	err := playback.Play(context.Background(), feed(in...), pace, func(engine.Event) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(in), n)
	// A ticker may fire its first tick early; every later one waits a period.
	assert.GreaterOrEqual(t, time.Since(began), 3*pace.Visit+pace.Path)
}

func TestPlay_RenderError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := playback.Play(context.Background(),
		feed(engine.Event{At: gridgraph.C(0, 0)}, engine.Event{At: gridgraph.C(0, 1)}),
		playback.Pacing{},
		func(engine.Event) error {
			calls++
			return boom
		})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

// TestPlay_RenderErrorReleasesGoroutines stops early on a failing render
// many times over and expects no goroutine to outlive Play and its stream.
func TestPlay_RenderErrorReleasesGoroutines(t *testing.T) {
	g, err := gridgraph.NewGrid(6, 6)
	require.NoError(t, err)
	boom := errors.New("boom")

	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		s := engine.Start(ctx, g, g.Start, g.Goal, engine.BFS)
		err = playback.Play(context.Background(), s.Events(), playback.Pacing{}, func(engine.Event) error {
			return boom
		})
		require.ErrorIs(t, err, boom)
		cancel()
		_, err = s.Wait()
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond, "goroutines before=%d after=%d", before, runtime.NumGoroutine())
}

func TestPlay_Cancel(t *testing.T) {
	events := make(chan engine.Event) // never closed
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- playback.Play(ctx, events, playback.NewPacing(engine.BFS, 0), func(engine.Event) error { return nil })
	}()
	select {
	case events <- engine.Event{Kind: engine.KindVisit}:
	case <-ctx.Done():
	}

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after the context expired")
	}
}

// TestPlay_Stream drives a real engine stream through a canvas.
func TestPlay_Stream(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"S..",
		".#.",
		"..G",
	})
	require.NoError(t, err)

	canvas := playback.NewCanvas(g)
	s := engine.Start(context.Background(), g, g.Start, g.Goal, engine.BFS)
	require.NoError(t, playback.Play(context.Background(), s.Events(), playback.Pacing{}, canvas.Apply))
	res, err := s.Wait()
	require.NoError(t, err)

	for _, at := range res.Path[1 : len(res.Path)-1] {
		assert.Equal(t, playback.OnPath, canvas.At(at), "%v", at)
	}
	assert.Equal(t, playback.Start, canvas.At(g.Start))
	assert.Equal(t, playback.Goal, canvas.At(g.Goal))
	assert.Equal(t, playback.Wall, canvas.At(gridgraph.C(1, 1)))
}

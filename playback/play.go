package playback

import (
	"context"
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/katalvlaran/gridpath/engine"
)

// Play consumes events, waiting one tick of the matching Pacing delay
// before handing each event to render. A zero delay renders immediately.
// Play returns when events is closed, when render fails, or with ctx.Err()
// once ctx is done. Its helper goroutines are released when it returns;
// stopping the producer of events is up to the caller.
func Play(
	ctx context.Context,
	events <-chan engine.Event,
	pace Pacing,
	render func(engine.Event) error,
) error {
	playCtx, stop := context.WithCancel(ctx)
	defer stop()

	var (
		current time.Duration
		wait    func() bool
		cancel  = func() {}
	)
	defer func() { cancel() }()

	for ev := range channerics.OrDone(playCtx.Done(), events) {
		if d := pace.For(ev.Kind); d > 0 {
			if d != current || wait == nil {
				cancel()
				var tickCtx context.Context
				tickCtx, cancel = context.WithCancel(playCtx)
				wait = ticker(tickCtx.Done(), d)
				current = d
			}
			if !wait() {
				return ctx.Err()
			}
		}
		if err := render(ev); err != nil {
			return err
		}
	}

	return ctx.Err()
}

// ticker starts a channerics ticker stopped by done and returns a function
// that blocks for the next tick, reporting false if done closed first.
func ticker(done <-chan struct{}, d time.Duration) func() bool {
	ticks := channerics.NewTicker(done, d)
	return func() bool {
		select {
		case _, ok := <-ticks:
			return ok
		case <-done:
			return false
		}
	}
}

// Package playback turns an engine event stream into paced, renderable
// frames. The engine never sleeps; everything time-related lives here on
// the consumer side.
package playback

import (
	"time"

	"github.com/katalvlaran/gridpath/engine"
)

// Base delays between consecutive events, before the speed adjustment.
const (
	AStarDelay    = 30 * time.Millisecond
	BFSDelay      = 10 * time.Millisecond
	DijkstraDelay = 20 * time.Millisecond
	PathDelay     = 20 * time.Millisecond

	// MinDelay is the floor applied by Delay, however fast the speed.
	MinDelay = 5 * time.Millisecond
)

// BaseDelay returns the visit delay for algo. Unknown names get the
// Dijkstra delay.
func BaseDelay(algo engine.Algorithm) time.Duration {
	switch algo {
	case engine.AStar:
		return AStarDelay
	case engine.BFS:
		return BFSDelay
	default:
		return DijkstraDelay
	}
}

// Delay applies the speed slider: speed milliseconds are taken off base,
// never going below MinDelay. A negative speed counts as zero.
func Delay(base time.Duration, speed int) time.Duration {
	if speed < 0 {
		speed = 0
	}
	if speed >= int(base/time.Millisecond) {
		return MinDelay
	}
	d := base - time.Duration(speed)*time.Millisecond
	if d < MinDelay {
		return MinDelay
	}
	return d
}

// Pacing holds the per-kind delays for one playback. The zero value plays
// events back as fast as they arrive.
type Pacing struct {
	Visit time.Duration
	Path  time.Duration
}

// NewPacing derives the delays for algo at the given speed.
func NewPacing(algo engine.Algorithm, speed int) Pacing {
	return Pacing{
		Visit: Delay(BaseDelay(algo), speed),
		Path:  Delay(PathDelay, speed),
	}
}

// For returns the delay preceding an event of kind k.
func (p Pacing) For(k engine.EventKind) time.Duration {
	if k == engine.KindPath {
		return p.Path
	}
	return p.Visit
}

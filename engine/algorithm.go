package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownAlgorithm is returned for an algorithm name outside the registry.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm names one of the interchangeable search strategies.
type Algorithm string

// Supported algorithms.
const (
	BFS      Algorithm = "bfs"
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

// DefaultAlgorithm is used when a caller leaves the choice empty.
const DefaultAlgorithm = AStar

// Strategy is the common signature of bfs.Search, dijkstra.Search and astar.Search.
type Strategy func(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...core.Option) (*core.Result, error)

var strategies = map[Algorithm]Strategy{
	BFS:      bfs.Search,
	Dijkstra: dijkstra.Search,
	AStar:    astar.Search,
}

// Algorithms lists the supported algorithms in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(strategies))
	for a := range strategies {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseAlgorithm normalizes a user-supplied name. It accepts any case and
// the aliases "a*" and "a-star". An empty string yields DefaultAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return DefaultAlgorithm, nil
	case "a*", "a-star":
		return AStar, nil
	default:
		a := Algorithm(v)
		if _, ok := strategies[a]; !ok {
			return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, s, Algorithms())
		}
		return a, nil
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Strategy returns the search function for a.
func (a Algorithm) Strategy() (Strategy, error) {
	s, ok := strategies[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
	return s, nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm,
// so JSON, YAML and flag values share one parser.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Set implements flag.Value.
func (a *Algorithm) Set(s string) error { return a.UnmarshalText([]byte(s)) }

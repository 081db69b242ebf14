package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Generator names a builder constructor.
type Generator string

// Supported generators.
const (
	GenOpen    Generator = "open"
	GenBarrier Generator = "barrier"
	GenRandom  Generator = "random"
	GenMaze    Generator = "maze"
)

// Scenario defaults.
const (
	DefaultRows    = 30
	DefaultCols    = 30
	DefaultDensity = 0.3
)

// Point is a grid coordinate that decodes from "r,c" or [r, c] and
// encodes as "r,c".
type Point gridgraph.Coord

// Coord converts p to a gridgraph.Coord.
func (p Point) Coord() gridgraph.Coord { return gridgraph.Coord(p) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return p.parse(node.Value)
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: line %d: coordinate needs 2 values, got %d", ErrInvalidConfig, node.Line, len(pair))
		}
		*p = Point{Row: pair[0], Col: pair[1]}
		return nil
	case yaml.MappingNode:
		var c gridgraph.Coord
		if err := node.Decode(&c); err != nil {
			return err
		}
		*p = Point(c)
		return nil
	default:
		return fmt.Errorf("%w: line %d: unsupported coordinate form", ErrInvalidConfig, node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (p Point) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("%d,%d", p.Row, p.Col), nil
}

func (p *Point) parse(s string) error {
	parts := strings.Split(strings.Trim(strings.TrimSpace(s), "()"), ",")
	if len(parts) != 2 {
		return fmt.Errorf("%w: coordinate %q, want \"row,col\"", ErrInvalidConfig, s)
	}
	var vals [2]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("%w: coordinate %q: %v", ErrInvalidConfig, s, err)
		}
		vals[i] = v
	}
	*p = Point{Row: vals[0], Col: vals[1]}
	return nil
}

// Barrier configures the barrier generator. Nil Row means the middle row;
// nil Gap means no opening.
type Barrier struct {
	Row *int `yaml:"row,omitempty"`
	Gap *int `yaml:"gap,omitempty"`
}

// Scenario describes one search: the grid, its endpoints and the
// algorithm with its playback speed.
type Scenario struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Start and Goal override the generator defaults when set.
	Start *Point `yaml:"start,omitempty"`
	Goal  *Point `yaml:"goal,omitempty"`

	// Layout, when non-empty, replaces Rows, Cols and Generator with a
	// literal map in the '.', '#', 'S', 'G' alphabet.
	Layout []string `yaml:"layout,omitempty"`
	// Walls are added after the grid is built.
	Walls []Point `yaml:"walls,omitempty"`

	Generator Generator `yaml:"generator"`
	Seed      int64     `yaml:"seed"`
	Density   float64   `yaml:"density"`
	Barrier   Barrier   `yaml:"barrier,omitempty"`

	Algorithm engine.Algorithm `yaml:"algorithm"`
	// Speed is subtracted (in ms) from the per-event delays.
	Speed int `yaml:"speed"`
}

// DefaultScenario is a 30×30 open grid searched with A*.
func DefaultScenario() Scenario {
	return Scenario{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		Generator: GenOpen,
		Density:   DefaultDensity,
		Algorithm: engine.DefaultAlgorithm,
	}
}

// Validate rejects scenarios Grid cannot materialise.
func (s *Scenario) Validate() error {
	if len(s.Layout) == 0 && (s.Rows < 1 || s.Cols < 1) {
		return fmt.Errorf("%w: scenario size %dx%d", ErrInvalidConfig, s.Rows, s.Cols)
	}
	if s.Speed < 0 {
		return fmt.Errorf("%w: scenario speed %d is negative", ErrInvalidConfig, s.Speed)
	}
	if _, err := s.constructor(); err != nil {
		return err
	}
	if _, err := engine.ParseAlgorithm(s.Algorithm.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Grid materialises the scenario.
func (s *Scenario) Grid() (*gridgraph.Grid, error) {
	var (
		g   *gridgraph.Grid
		err error
	)
	if len(s.Layout) > 0 {
		if g, err = gridgraph.FromRows(s.Layout); err != nil {
			return nil, err
		}
		if s.Start != nil {
			if err = g.SetStart(s.Start.Coord()); err != nil {
				return nil, err
			}
		}
		if s.Goal != nil {
			if err = g.SetGoal(s.Goal.Coord()); err != nil {
				return nil, err
			}
		}
	} else {
		ctor, cerr := s.constructor()
		if cerr != nil {
			return nil, cerr
		}
		opts := []builder.BuilderOption{builder.WithSeed(s.Seed)}
		if s.Start != nil {
			opts = append(opts, builder.WithStart(s.Start.Coord()))
		}
		if s.Goal != nil {
			opts = append(opts, builder.WithGoal(s.Goal.Coord()))
		}
		if g, err = builder.Build(s.Rows, s.Cols, ctor, opts...); err != nil {
			return nil, err
		}
	}

	for _, w := range s.Walls {
		if err = g.SetWall(w.Coord(), true); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (s *Scenario) constructor() (builder.Constructor, error) {
	switch Generator(strings.ToLower(string(s.Generator))) {
	case GenOpen, "":
		return builder.Open(), nil
	case GenBarrier:
		row, gap := s.Rows/2, -1
		if s.Barrier.Row != nil {
			row = *s.Barrier.Row
		}
		if s.Barrier.Gap != nil {
			gap = *s.Barrier.Gap
		}
		return builder.Barrier(row, gap), nil
	case GenRandom:
		return builder.Random(s.Density), nil
	case GenMaze:
		return builder.Maze(), nil
	default:
		return nil, fmt.Errorf("%w: generator %q (want open, barrier, random or maze)", ErrInvalidConfig, s.Generator)
	}
}

// scenarioEnvKeys are the scalar scenario keys that may be overridden
// from the environment. Values are decoded as YAML, so "2,3", "[2, 3]"
// and "[S.., .#G]" all work.
var scenarioEnvKeys = []string{
	"rows", "cols", "start", "goal", "layout", "walls",
	"generator", "seed", "density", "algorithm", "speed",
}

// applyEnv decodes GRIDPATH_SCENARIO_* overrides on top of s.
func (s *Scenario) applyEnv(lookup func(string) (string, bool)) error {
	for _, key := range scenarioEnvKeys {
		val, ok := lookup(envName("scenario." + key))
		if !ok {
			continue
		}
		doc := key + ": " + val
		if err := yaml.Unmarshal([]byte(doc), s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, envName("scenario."+key), err)
		}
	}
	return nil
}

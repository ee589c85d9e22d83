// Package scenario loads weighted grid boards from YAML.
//
// A scenario file looks like:
//
//	width: 10
//	height: 10
//	walls:
//	  - {x1: 1, y1: 7, x2: 4, y2: 9}   # half-open rectangle
//	forests: [[3, 4], [3, 5]]
//	forest_cost: 5                      # optional, defaults to 5; 0 makes forests free
//	start: [1, 4]
//	goal: [8, 3]
//
// Unknown keys are rejected.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// ErrInvalidScenario is wrapped by every parse and validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Point is an [x, y] pair.
type Point [2]int

// Location converts p to a grid location.
func (p Point) Location() gridgraph.Location {
	return gridgraph.Location{X: p[0], Y: p[1]}
}

// Rect is a half-open wall rectangle [X1,X2)×[Y1,Y2).
type Rect struct {
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`
}

// Scenario describes a board and the trip to plan on it.
// A nil ForestCost means gridgraph.ForestCost.
type Scenario struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Walls      []Rect   `yaml:"walls,omitempty"`
	Forests    []Point  `yaml:"forests,omitempty,flow"`
	ForestCost *float64 `yaml:"forest_cost,omitempty"`
	Start      Point    `yaml:"start,flow"`
	Goal       Point    `yaml:"goal,flow"`
}

// Default is the 10×10 demo board with its usual trip from (1,4) to (8,3).
func Default() *Scenario {
	g := gridgraph.Diagram4()
	cost := g.ForestCost
	s := &Scenario{
		Width:      g.Width,
		Height:     g.Height,
		Walls:      []Rect{{X1: 1, Y1: 7, X2: 4, Y2: 9}},
		ForestCost: &cost,
		Start:      Point{1, 4},
		Goal:       Point{8, 3},
	}
	for _, f := range g.Forests() {
		s.Forests = append(s.Forests, Point{f.X, f.Y})
	}

	return s
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes YAML and validates the result.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// YAML encodes s.
func (s *Scenario) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks sizes, bounds and that start and goal are open tiles.
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidScenario, s.Width, s.Height)
	}
	if c := s.ForestCost; c != nil && (*c < 0 || math.IsNaN(*c)) {
		return fmt.Errorf("%w: forest_cost %g must be a non-negative number", ErrInvalidScenario, *c)
	}
	for i, r := range s.Walls {
		if r.X1 > r.X2 || r.Y1 > r.Y2 {
			return fmt.Errorf("%w: wall %d has inverted corners", ErrInvalidScenario, i)
		}
	}
	for i, f := range s.Forests {
		if !s.inBounds(f) {
			return fmt.Errorf("%w: forest %d at %v is out of bounds", ErrInvalidScenario, i, f.Location())
		}
	}
	ends := []struct {
		name string
		p    Point
	}{{"start", s.Start}, {"goal", s.Goal}}
	for _, e := range ends {
		name, p := e.name, e.p
		if !s.inBounds(p) {
			return fmt.Errorf("%w: %s %v is out of bounds", ErrInvalidScenario, name, p.Location())
		}
		for _, r := range s.Walls {
			if p[0] >= r.X1 && p[0] < r.X2 && p[1] >= r.Y1 && p[1] < r.Y2 {
				return fmt.Errorf("%w: %s %v is inside a wall", ErrInvalidScenario, name, p.Location())
			}
		}
	}

	return nil
}

// Build validates s and constructs its grid.
func (s *Scenario) Build() (*gridgraph.WeightedGrid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := gridgraph.NewWeightedGrid(s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.ForestCost != nil {
		g.ForestCost = *s.ForestCost
	}
	for _, r := range s.Walls {
		g.AddRect(r.X1, r.Y1, r.X2, r.Y2)
	}
	for _, f := range s.Forests {
		if err = g.AddForest(f.Location()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
	}

	return g, nil
}

func (s *Scenario) inBounds(p Point) bool {
	return p[0] >= 0 && p[0] < s.Width && p[1] >= 0 && p[1] < s.Height
}

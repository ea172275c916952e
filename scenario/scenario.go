// SPDX-License-Identifier: MIT
// Package: gridastar/scenario
//
// scenario.go - Scenario values and their YAML document form.
//
// Document layout:
//
//	name: wall
//	connectivity: 8        # 4 or 8, default 8
//	heuristic: octile      # optional, see astar.HeuristicNames
//	start: {x: 0, y: 2}
//	goal:  {x: 4, y: 2}
//	rows:
//	  - "....."
//	  - "..O.."
//
// Rows use the grid.FromRows alphabet: '.' free, 'O' or '#' blocked.

package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

// Scenario is a ready-to-search problem: a grid plus a start/finish pair.
type Scenario struct {
	Name string
	Grid *grid.Grid
	Endpoints
	// Heuristic is a name accepted by astar.ParseHeuristic; empty means default.
	Heuristic string
}

// document is the on-disk YAML form of a Scenario.
type document struct {
	Name         string        `yaml:"name"`
	Connectivity int           `yaml:"connectivity,omitempty"`
	Heuristic    string        `yaml:"heuristic,omitempty"`
	Start        grid.Position `yaml:"start"`
	Goal         grid.Position `yaml:"goal"`
	Rows         []string      `yaml:"rows"`
}

// Demo builds the classic demonstration: a W×H '+' map with one of the eight
// canonical layouts, drawn with the configured RNG or pinned with WithLayout.
func Demo(width, height int, opts ...Option) (*Scenario, error) {
	g, err := PlusMap(width, height, opts...)
	if err != nil {
		return nil, err
	}
	i, ep, err := RandomLayout(width, height, opts...)
	if err != nil {
		return nil, err
	}

	return &Scenario{
		Name:      fmt.Sprintf("plus-%dx%d-%s", width, height, LayoutName(i)),
		Grid:      g,
		Endpoints: ep,
	}, nil
}

// Layouts returns one Scenario per canonical layout, all sharing a single
// W×H '+' grid.
func Layouts(width, height int, opts ...Option) ([]*Scenario, error) {
	g, err := PlusMap(width, height, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]*Scenario, 0, LayoutCount)
	for i := 0; i < LayoutCount; i++ {
		ep, err := Layout(i, width, height)
		if err != nil {
			return nil, err
		}
		out = append(out, &Scenario{
			Name:      LayoutName(i),
			Grid:      g,
			Endpoints: ep,
		})
	}

	return out, nil
}

// Parse decodes a YAML scenario document and validates it: the rows must
// form a grid and both endpoints must be free cells of it.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}

	conn := grid.Conn8
	if doc.Connectivity != 0 {
		c, err := grid.ParseConnectivity(doc.Connectivity)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadScenario, err)
		}
		conn = c
	}
	if _, err := astar.ParseHeuristic(doc.Heuristic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}

	g, err := grid.FromRows(doc.Rows, grid.WithConnectivity(conn))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}
	for _, p := range []grid.Position{doc.Start, doc.Goal} {
		if !g.Passable(p) {
			return nil, fmt.Errorf("%w: endpoint %v is outside the map or blocked", ErrBadScenario, p)
		}
	}

	return &Scenario{
		Name:      doc.Name,
		Grid:      g,
		Endpoints: Endpoints{Start: doc.Start, Goal: doc.Goal},
		Heuristic: doc.Heuristic,
	}, nil
}

// Load reads and parses a scenario file.
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

// MarshalYAML implements yaml.Marshaler so a Scenario round-trips through Parse.
func (s *Scenario) MarshalYAML() (interface{}, error) {
	if s.Grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrBadScenario)
	}
	return document{
		Name:         s.Name,
		Connectivity: s.Grid.Directions(),
		Heuristic:    s.Heuristic,
		Start:        s.Start,
		Goal:         s.Goal,
		Rows:         s.Grid.Rows(),
	}, nil
}

// Save writes s to path as YAML.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

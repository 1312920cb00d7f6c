// Package scenario describes runnable simulation setups: grid shape,
// threshold, boundary policy and how the initial infected cells are placed.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"contagion/internal/grid"
	"contagion/internal/spread"
)

// Seeding modes for the initial state.
const (
	SeedCenter   = "center"   // one infected cell at the grid's center
	SeedRandom   = "random"   // Bernoulli fill at the configured density
	SeedDiagonal = "diagonal" // shifted diagonal hyperplanes
)

// Config is a scenario as read from a YAML file or assembled from flags.
// Threshold is a pointer so that an omitted value can default without making
// an explicit 0 unrepresentable.
type Config struct {
	Shape     []int   `yaml:"shape"`
	Threshold *int    `yaml:"threshold"`
	Boundary  string  `yaml:"boundary"`
	Seeding   string  `yaml:"seeding"`
	Density   float64 `yaml:"density"`
	Seed      int64   `yaml:"seed"`
}

// Default returns the standard scenario: a 16x16 bounded grid seeded with a
// single centered infection.
func Default() Config {
	return Config{
		Shape:    []int{16, 16},
		Boundary: "lattice",
		Seeding:  SeedCenter,
		Density:  0.1,
		Seed:     42,
	}
}

// Load reads a scenario file, with absent fields keeping their defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return c, nil
}

// ThresholdOrDefault returns the configured threshold, or the package
// default when the scenario leaves it unset.
func (c Config) ThresholdOrDefault() int {
	if c.Threshold == nil {
		return spread.DefaultThreshold
	}
	return *c.Threshold
}

// Build constructs the seeded start grid and the simulation it configures.
func (c Config) Build() (*grid.Grid, *spread.Simulation, error) {
	g, err := grid.New(c.Shape...)
	if err != nil {
		return nil, nil, err
	}
	if err := Seed(g, c.Seeding, c.Seed, c.Density); err != nil {
		return nil, nil, err
	}
	b, err := spread.ParseBoundary(c.Boundary)
	if err != nil {
		return nil, nil, err
	}
	sim, err := spread.New(g, c.ThresholdOrDefault(), b)
	if err != nil {
		return nil, nil, err
	}
	return g, sim, nil
}

// Seed places the initial infected cells into g using the named mode.
func Seed(g *grid.Grid, mode string, seed int64, density float64) error {
	switch mode {
	case SeedCenter, "":
		seedCenter(g)
	case SeedRandom:
		fillBernoulli(newRNG(seed), g.Cells(), density)
	case SeedDiagonal:
		seedDiagonal(g)
	default:
		return fmt.Errorf("unknown seeding mode %q", mode)
	}
	return nil
}

func seedCenter(g *grid.Grid) {
	idx := 0
	for axis := 0; axis < g.Rank(); axis++ {
		idx += (g.Dim(axis) / 2) * g.Stride(axis)
	}
	g.Cells()[idx] = 1
}

// seedDiagonal infects the cells where the alternating sum of all but the
// last coordinate, taken modulo the last dimension, equals the last
// coordinate. In 2-D this is the main diagonal; in 3-D it reproduces a stack
// of identity planes each rolled one step further than the previous layer.
func seedDiagonal(g *grid.Grid) {
	cells := g.Cells()
	rank := g.Rank()
	last := g.Dim(rank - 1)
	for i := range cells {
		sum := 0
		rem := i
		for axis := 0; axis < rank-1; axis++ {
			c := rem / g.Stride(axis)
			rem %= g.Stride(axis)
			if (rank-2-axis)%2 == 0 {
				sum += c
			} else {
				sum -= c
			}
		}
		cells[i] = 0
		if ((sum%last)+last)%last == rem {
			cells[i] = 1
		}
	}
}

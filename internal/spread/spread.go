// Package spread implements monotone infection spread on an N-dimensional
// binary grid: a cell becomes infected once at least m of its axis-aligned
// neighbors are infected, and infection never reverts.
package spread

import (
	"errors"
	"fmt"
	"iter"

	"contagion/internal/grid"
)

// DefaultThreshold is the neighbor count used when a caller leaves the
// threshold unspecified.
const DefaultThreshold = 2

// Boundary selects how neighbor counting treats the grid edges.
type Boundary int

const (
	// Lattice bounds the grid: off-grid neighbors count as uninfected.
	Lattice Boundary = iota
	// Torus wraps every axis: index 0 and the last index along an axis are
	// adjacent. On a size-1 axis a cell is its own neighbor in both
	// directions.
	Torus
)

// String returns the boundary name.
func (b Boundary) String() string {
	if b == Torus {
		return "torus"
	}
	return "lattice"
}

// ParseBoundary maps a boundary name to its value.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "lattice":
		return Lattice, nil
	case "torus":
		return Torus, nil
	}
	return Lattice, fmt.Errorf("unknown boundary %q (want lattice or torus)", s)
}

// Errors reported by New before any iteration begins.
var (
	ErrNoGrid            = errors.New("spread: missing start grid")
	ErrNegativeThreshold = errors.New("spread: negative threshold")
)

// Counts returns, for every cell, the number of infected cells among its 2·N
// axis-aligned neighbors under the given boundary policy. The result has the
// same row-major layout as g.Cells().
func Counts(g *grid.Grid, b Boundary) []int {
	cells := g.Cells()
	out := make([]int, len(cells))
	for axis := 0; axis < g.Rank(); axis++ {
		n := g.Dim(axis)
		stride := g.Stride(axis)
		span := n * stride
		for i, v := range cells {
			if v == 0 {
				continue
			}
			// Each infected cell contributes to the count of its
			// neighbor one step up and one step down this axis.
			pos := (i % span) / stride
			if pos+1 < n {
				out[i+stride]++
			} else if b == Torus {
				out[i-(n-1)*stride]++
			}
			if pos > 0 {
				out[i-stride]++
			} else if b == Torus {
				out[i+(n-1)*stride]++
			}
		}
	}
	return out
}

// Update applies one step of the infection rule and returns the next state:
// a cell is infected in the result if it already was, or if at least m of
// its neighbors are. The input grid is not modified.
func Update(g *grid.Grid, m int, b Boundary) *grid.Grid {
	counts := Counts(g, b)
	next := g.Clone()
	cells := next.Cells()
	for i, c := range counts {
		if c >= m {
			cells[i] = 1
		}
	}
	return next
}

// Simulation produces the lazy, finite sequence of grid states reached by
// repeatedly applying the infection rule until a step changes nothing. The
// first value produced is the start state itself; the first state equal to
// its predecessor is detected internally and never emitted.
type Simulation struct {
	cur      *grid.Grid
	m        int
	boundary Boundary
	started  bool
	done     bool
}

// New validates the inputs and returns a simulation ready to produce states.
// The grid must be non-empty and m must be non-negative; both are checked
// here so no error can arise mid-iteration.
func New(start *grid.Grid, m int, b Boundary) (*Simulation, error) {
	if start == nil || start.Len() == 0 {
		return nil, ErrNoGrid
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeThreshold, m)
	}
	return &Simulation{cur: start.Clone(), m: m, boundary: b}, nil
}

// NewLattice returns a simulation on a bounded grid.
func NewLattice(start *grid.Grid, m int) (*Simulation, error) {
	return New(start, m, Lattice)
}

// NewTorus returns a simulation on a grid whose axes wrap around.
func NewTorus(start *grid.Grid, m int) (*Simulation, error) {
	return New(start, m, Torus)
}

// Boundary returns the boundary policy the simulation runs under.
func (s *Simulation) Boundary() Boundary { return s.boundary }

// Threshold returns the neighbor threshold m.
func (s *Simulation) Threshold() int { return s.m }

// Next produces the next state of the sequence, or reports false once the
// fixpoint has been reached. Every returned grid is an independent copy the
// caller owns; the simulation never mutates a grid it has handed out.
func (s *Simulation) Next() (*grid.Grid, bool) {
	if s.done {
		return nil, false
	}
	if !s.started {
		s.started = true
		return s.cur.Clone(), true
	}
	next := Update(s.cur, s.m, s.boundary)
	if next.Equal(s.cur) {
		s.done = true
		return nil, false
	}
	s.cur = next
	return next.Clone(), true
}

// Done reports whether the sequence has terminated.
func (s *Simulation) Done() bool { return s.done }

// All returns a single-use iterator over the remaining states. Stopping
// early is always safe; the sequence cannot be restarted mid-way.
func (s *Simulation) All() iter.Seq[*grid.Grid] {
	return func(yield func(*grid.Grid) bool) {
		for g, ok := s.Next(); ok; g, ok = s.Next() {
			if !yield(g) {
				return
			}
		}
	}
}

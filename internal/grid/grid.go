// Package grid provides the N-dimensional binary grid that infection
// simulations run on.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidShape reports a shape with no axes or a non-positive dimension.
var ErrInvalidShape = errors.New("grid: invalid shape")

// Grid stores an N-dimensional grid of 0/1 cell values in row-major order.
// The shape is fixed for the lifetime of the grid.
type Grid struct {
	shape   []int
	strides []int
	data    []uint8
}

// New allocates a zeroed grid with the given shape. Every dimension must be
// positive and at least one dimension is required.
func New(shape ...int) (*Grid, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: no dimensions", ErrInvalidShape)
	}
	total := 1
	for _, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("%w: dimension %d", ErrInvalidShape, n)
		}
		total *= n
	}
	g := &Grid{
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
		data:    make([]uint8, total),
	}
	stride := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		g.strides[axis] = stride
		stride *= shape[axis]
	}
	return g, nil
}

// Rank returns the number of axes.
func (g *Grid) Rank() int { return len(g.shape) }

// Shape returns a copy of the per-axis dimensions.
func (g *Grid) Shape() []int { return append([]int(nil), g.shape...) }

// Dim returns the size of the given axis.
func (g *Grid) Dim(axis int) int { return g.shape[axis] }

// Stride returns the linear-index distance between cells adjacent along the
// given axis.
func (g *Grid) Stride(axis int) int { return g.strides[axis] }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for the given coordinates. The number
// of coordinates must equal the rank.
func (g *Grid) Index(coords ...int) int {
	idx := 0
	for axis, c := range coords {
		idx += c * g.strides[axis]
	}
	return idx
}

// At returns the cell value at the given coordinates.
func (g *Grid) At(coords ...int) uint8 { return g.data[g.Index(coords...)] }

// Clone returns an independent copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	c := *g
	c.data = append([]uint8(nil), g.data...)
	return &c
}

// Equal reports whether both grids have the same shape and elementwise equal
// cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || len(g.shape) != len(o.shape) {
		return false
	}
	for axis, n := range g.shape {
		if o.shape[axis] != n {
			return false
		}
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of set cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Full reports whether every cell is set.
func (g *Grid) Full() bool { return g.Count() == len(g.data) }

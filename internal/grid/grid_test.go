package grid

import (
	"errors"
	"testing"
)

func TestNewRejectsBadShapes(t *testing.T) {
	cases := [][]int{
		{},
		{0},
		{-1},
		{3, 0},
		{4, -2, 4},
	}
	for _, shape := range cases {
		if _, err := New(shape...); !errors.Is(err, ErrInvalidShape) {
			t.Fatalf("New(%v) error = %v, want ErrInvalidShape", shape, err)
		}
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	g, err := New(2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 24 {
		t.Fatalf("Len() = %d, want 24", g.Len())
	}
	if got := g.Index(1, 2, 3); got != 23 {
		t.Fatalf("Index(1,2,3) = %d, want 23", got)
	}
	if got := g.Stride(0); got != 12 {
		t.Fatalf("Stride(0) = %d, want 12", got)
	}
	g.Cells()[g.Index(0, 1, 2)] = 1
	if g.At(0, 1, 2) != 1 {
		t.Fatal("At(0,1,2) did not observe the write")
	}
	if g.At(0, 1, 3) != 0 {
		t.Fatal("write leaked into a neighboring cell")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New(3, 3)
	g.Cells()[4] = 1
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Cells()[0] = 1
	if g.Cells()[0] != 0 {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(2, 3)
	b, _ := New(3, 2)
	if a.Equal(b) {
		t.Fatal("grids with different shapes compare equal")
	}
	if a.Equal(nil) {
		t.Fatal("grid compares equal to nil")
	}
	c, _ := New(2, 3)
	if !a.Equal(c) {
		t.Fatal("zeroed same-shape grids compare unequal")
	}
	c.Cells()[5] = 1
	if a.Equal(c) {
		t.Fatal("grids with different cells compare equal")
	}
}

func TestCountAndFull(t *testing.T) {
	g, _ := New(2, 2)
	if g.Count() != 0 || g.Full() {
		t.Fatal("fresh grid should be empty")
	}
	for i := range g.Cells() {
		g.Cells()[i] = 1
		if g.Count() != i+1 {
			t.Fatalf("Count() = %d after %d writes", g.Count(), i+1)
		}
	}
	if !g.Full() {
		t.Fatal("fully set grid should report Full")
	}
}

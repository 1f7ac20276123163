// Package grid stores one value per coordinate of a layout.Layout in a flat,
// densely packed slice indexed through Layout.Offset.
//
// A Grid owns its cells; Clone and Map produce independent copies, so no two
// grids ever alias the same storage.
package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// Grid is a layout plus one T per contained coordinate.
type Grid[L layout.Layout, T any] struct {
	layout L
	cells  []T
}

// New returns a grid with every cell set to fill.
// Complexity: O(Size()).
func New[L layout.Layout, T any](l L, fill T) *Grid[L, T] {
	cells := make([]T, l.Size())
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[L, T]{layout: l, cells: cells}
}

// FromFunc returns a grid whose cell at c is fn(c).
func FromFunc[L layout.Layout, T any](l L, fn func(hex.Coord) T) *Grid[L, T] {
	g := &Grid[L, T]{layout: l, cells: make([]T, 0, l.Size())}
	for c := range l.All() {
		g.cells = append(g.cells, fn(c))
	}
	return g
}

// FromValues wraps values laid out in offset order. The slice is copied.
// Returns an error if its length differs from l.Size().
func FromValues[L layout.Layout, T any](l L, values []T) (*Grid[L, T], error) {
	if len(values) != l.Size() {
		return nil, fmt.Errorf("grid: %d values for %v of size %d", len(values), l, l.Size())
	}
	cells := make([]T, len(values))
	copy(cells, values)
	return &Grid[L, T]{layout: l, cells: cells}, nil
}

// Layout returns the grid's shape.
func (g *Grid[L, T]) Layout() L {
	return g.layout
}

// Len returns the number of cells.
func (g *Grid[L, T]) Len() int {
	return len(g.cells)
}

// At returns the value at c, or false if c is outside the layout.
func (g *Grid[L, T]) At(c hex.Coord) (T, bool) {
	off, ok := g.layout.Offset(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[off], true
}

// Get returns the value at c and panics if c is outside the layout. Use it
// only where containment is an invariant of the caller.
func (g *Grid[L, T]) Get(c hex.Coord) T {
	off, ok := g.layout.Offset(c)
	if !ok {
		panic(fmt.Sprintf("grid: %v outside %v", c, g.layout))
	}
	return g.cells[off]
}

// Ptr returns a pointer to the cell at c for in-place updates, or nil.
func (g *Grid[L, T]) Ptr(c hex.Coord) *T {
	off, ok := g.layout.Offset(c)
	if !ok {
		return nil
	}
	return &g.cells[off]
}

// Set stores v at c. It reports false, storing nothing, if c is outside.
func (g *Grid[L, T]) Set(c hex.Coord, v T) bool {
	off, ok := g.layout.Offset(c)
	if !ok {
		return false
	}
	g.cells[off] = v
	return true
}

// All yields every coordinate with its value in layout scan order.
func (g *Grid[L, T]) All() iter.Seq2[hex.Coord, T] {
	return func(yield func(hex.Coord, T) bool) {
		i := 0
		for c := range g.layout.All() {
			if !yield(c, g.cells[i]) {
				return
			}
			i++
		}
	}
}

// Values returns a copy of the cells in offset order.
func (g *Grid[L, T]) Values() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of g.
func (g *Grid[L, T]) Clone() *Grid[L, T] {
	return &Grid[L, T]{layout: g.layout, cells: g.Values()}
}

// Map builds a grid of the same layout holding fn(c, v) for every cell.
func Map[L layout.Layout, T, U any](g *Grid[L, T], fn func(hex.Coord, T) U) *Grid[L, U] {
	out := &Grid[L, U]{layout: g.layout, cells: make([]U, 0, len(g.cells))}
	for c, v := range g.All() {
		out.cells = append(out.cells, fn(c, v))
	}
	return out
}

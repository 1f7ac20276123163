package grid

import (
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// Wrap pads a hexagonal grid of radius R into one of radius R+1. Inner cells
// keep their values; each cell of the new outer ring takes the value found at
// its toroidal image g.Layout().Wrap(c), so a 7-cell neighborhood centered on
// any original cell is fully readable.
// Complexity: O(Size()).
func Wrap[T any](g *Grid[layout.Hexagonal, T]) *Grid[layout.Hexagonal, T] {
	inner := g.Layout()
	outer := layout.Hexagonal{Radius: inner.Radius + 1}
	return FromFunc(outer, func(c hex.Coord) T {
		return g.Get(inner.Wrap(c))
	})
}

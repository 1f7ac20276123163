package regions

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// Region is one connected area. Cells are listed in discovery order, starting
// from the region's first cell in layout scan order.
type Region[T any] struct {
	Value T
	Cells []hex.Coord
}

// Size returns the number of cells in the region.
func (r Region[T]) Size() int { return len(r.Cells) }

// Components partitions g into connected regions. Two neighboring cells join
// the same region when same reports true for their values; same should be an
// equivalence. Regions are returned in scan order of their first cell.
//
// Time:   O(N·6) for N cells.
// Memory: O(N) for visited flags and output.
func Components[L layout.Layout, T any](g *grid.Grid[L, T], same func(a, b T) bool) []Region[T] {
	seen := grid.New(g.Layout(), false)
	var out []Region[T]

	for start, v := range g.All() {
		if seen.Get(start) {
			continue
		}
		// BFS from start
		queue := []hex.Coord{start}
		seen.Set(start, true)
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range queue[qi].Neighbors() {
				w, ok := g.At(nb)
				if !ok || seen.Get(nb) || !same(v, w) {
					continue
				}
				seen.Set(nb, true)
				queue = append(queue, nb)
			}
		}
		out = append(out, Region[T]{Value: v, Cells: queue})
	}
	return out
}

// Equal is the default sameness predicate for comparable values.
func Equal[T comparable](a, b T) bool { return a == b }

// Count returns the number of separate regions of each value.
func Count[L layout.Layout, T comparable](g *grid.Grid[L, T]) map[T]int {
	counts := make(map[T]int)
	for _, r := range Components(g, Equal[T]) {
		counts[r.Value]++
	}
	return counts
}

// Rank returns the regions holding value v, largest first. Regions of equal
// size keep scan order.
// Complexity: O(N·6 + K log K) for N cells and K matching regions.
func Rank[L layout.Layout, T comparable](g *grid.Grid[L, T], v T) []Region[T] {
	var out []Region[T]
	for _, r := range Components(g, Equal[T]) {
		if r.Value == v {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b Region[T]) int {
		return cmp.Compare(b.Size(), a.Size())
	})
	return out
}

// Largest returns the biggest region holding value v; the earliest in scan
// order wins ties. ok is false if v does not occur.
func Largest[L layout.Layout, T comparable](g *grid.Grid[L, T], v T) (Region[T], bool) {
	ranked := Rank(g, v)
	if len(ranked) == 0 {
		return Region[T]{}, false
	}
	return ranked[0], true
}

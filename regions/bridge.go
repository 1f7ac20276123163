package regions

import (
	"container/list"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// Bridge finds a cheapest chain of neighboring cells from any cell of src to
// any cell of dst. Entering a cell whose value satisfies free costs 0; any
// other cell costs 1. It returns the chain (both endpoints included) and the
// number of non-free cells on it, not counting the start.
//
// Behavior:
//  1. Multi-source 0-1 BFS from every src cell.
//  2. Stop at the first dst cell popped from the deque.
//  3. Rebuild the path through predecessor links.
//
// Time:   O(N·6) for N cells.
// Memory: O(N) for distances and predecessors.
func Bridge[L layout.Layout, T any](g *grid.Grid[L, T], src, dst []hex.Coord, free func(T) bool) ([]hex.Coord, int, error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrEmptyRegion
	}
	l := g.Layout()
	isDst := grid.New(l, false)
	for _, c := range dst {
		if !isDst.Set(c, true) {
			return nil, 0, fmt.Errorf("dst %v: %w", c, ErrOutsideGrid)
		}
	}

	type link struct {
		from hex.Coord
		ok   bool
	}
	dist := grid.New(l, math.MaxInt)
	prev := grid.New(l, link{})

	// 0-1 BFS: cost-0 moves go to the front, cost-1 moves to the back
	dq := list.New()
	for _, c := range src {
		if !dist.Set(c, 0) {
			return nil, 0, fmt.Errorf("src %v: %w", c, ErrOutsideGrid)
		}
		dq.PushFront(c)
	}

	var (
		target hex.Coord
		found  bool
	)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(hex.Coord)
		if isDst.Get(u) {
			target, found = u, true
			break
		}
		du := dist.Get(u)
		for _, v := range u.Neighbors() {
			val, ok := g.At(v)
			if !ok {
				continue
			}
			step := 1
			if free(val) {
				step = 0
			}
			if nd := du + step; nd < dist.Get(v) {
				dist.Set(v, nd)
				prev.Set(v, link{from: u, ok: true})
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if !found {
		return nil, 0, ErrNoPath
	}

	path := []hex.Coord{target}
	for p := prev.Get(target); p.ok; p = prev.Get(p.from) {
		path = append(path, p.from)
	}
	slices.Reverse(path)
	return path, dist.Get(target), nil
}

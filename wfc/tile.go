package wfc

import (
	"cmp"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// SignatureLen is the number of cells a tile exposes: its center and the six
// neighbors.
const SignatureLen = 1 + int(hex.DirectionCount)

// Signature holds a tile's values: slot 0 is the center, slot d+1 the
// neighbor in Direction d.
type Signature[T cmp.Ordered] [SignatureLen]T

// slot maps a local position within one step of the center to its signature
// slot.
func slot(local hex.Coord) (int, bool) {
	if local == hex.Zero {
		return 0, true
	}
	d, ok := hex.DirectionOf(local)
	if !ok {
		return 0, false
	}
	return int(d) + 1, true
}

// local returns the position of signature slot i relative to the center.
func local(i int) hex.Coord {
	if i == 0 {
		return hex.Zero
	}
	return hex.Direction(i - 1).Offset()
}

// Compare orders signatures lexicographically.
func (s Signature[T]) Compare(o Signature[T]) int {
	for i := range s {
		if c := cmp.Compare(s[i], o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Center returns the value a tile writes into the output when collapsed.
func (s Signature[T]) Center() T {
	return s[0]
}

// Compatible reports whether a tile with signature o may sit in direction d of
// a tile with signature s: every position the two neighborhoods share holds
// the same value. Positions more than one step apart never overlap.
func (s Signature[T]) Compatible(o Signature[T], d hex.Direction) bool {
	shift := d.Offset()
	for i := range s {
		j, ok := slot(local(i).Sub(shift))
		if !ok {
			continue
		}
		if s[i] != o[j] {
			return false
		}
	}
	return true
}

// Tile is a view of one neighborhood of a sample grid, read through a lattice
// symmetry. Tiles are compared by Signature only; two tiles taken at
// different offsets or under different transforms are equal when they expose
// the same values.
type Tile[T cmp.Ordered] struct {
	grid      *grid.Grid[layout.Hexagonal, T]
	Offset    hex.Coord
	Transform hex.Transform
}

// NewTile returns the view of g centered at offset, read through tr. Every
// cell within one step of offset must be inside g.
func NewTile[T cmp.Ordered](g *grid.Grid[layout.Hexagonal, T], offset hex.Coord, tr hex.Transform) (Tile[T], error) {
	if g.Layout().Radius < 2 || offset.Length() > g.Layout().Radius-2 {
		return Tile[T]{}, fmt.Errorf("tile at %v in %v: %w", offset, g.Layout(), ErrOutsideLayout)
	}
	return Tile[T]{grid: g, Offset: offset, Transform: tr}, nil
}

// At returns the value at a local position within one step of the center.
func (t Tile[T]) At(pos hex.Coord) T {
	return t.grid.Get(t.Offset.Add(t.Transform.Apply(pos)))
}

// Signature reads the seven values of the tile.
func (t Tile[T]) Signature() Signature[T] {
	var s Signature[T]
	for i := range s {
		s[i] = t.At(local(i))
	}
	return s
}

// Equal compares tiles structurally.
func (t Tile[T]) Equal(o Tile[T]) bool {
	return t.Signature() == o.Signature()
}

// Compare orders tiles by signature.
func (t Tile[T]) Compare(o Tile[T]) int {
	return t.Signature().Compare(o.Signature())
}

// Compatible reports whether o may be placed in direction d of t.
// t.Compatible(o, d) == o.Compatible(t, d.Opposite()) for all tiles.
func (t Tile[T]) Compatible(o Tile[T], d hex.Direction) bool {
	return t.Signature().Compatible(o.Signature(), d)
}

// ExtractTiles wraps sample toroidally and collects one tile per distinct
// signature over every sample cell and every transform, in first-seen order
// (scan order of offsets, then transform order).
// Complexity: O(S·|transforms|) for a sample of S cells.
func ExtractTiles[T cmp.Ordered](sample *grid.Grid[layout.Hexagonal, T], transforms []hex.Transform) ([]Tile[T], error) {
	if sample == nil || sample.Len() == 0 {
		return nil, ErrEmptySample
	}
	wrapped := grid.Wrap(sample)
	interior := wrapped.Layout().Radius - 2

	seen := mapset.New[Signature[T]]()
	var tiles []Tile[T]
	for c := range wrapped.Layout().All() {
		if c.Length() > interior {
			continue
		}
		for _, tr := range transforms {
			t := Tile[T]{grid: wrapped, Offset: c, Transform: tr}
			sig := t.Signature()
			if seen.Has(sig) {
				continue
			}
			seen.Put(sig)
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}

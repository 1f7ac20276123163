package layout

import (
	"errors"
	"iter"

	"github.com/katalvlaran/hexforge/hex"
)

// ErrInvalidSize indicates a layout dimension smaller than 1, or one whose
// cell count would exceed MaxSize.
var ErrInvalidSize = errors.New("layout: invalid dimensions")

// MaxSize is the largest cell count NewHexagonal and NewSquare accept
// (a hexagon of radius 2365, or a 4096×4096 square).
const MaxSize = 1 << 24

// Layout describes the shape of a grid. Implementations are small value types
// that can be copied freely. Values built by hand with a dimension below 1
// are empty: Size is 0 and All yields nothing.
type Layout interface {
	// Size returns the number of contained coordinates.
	Size() int
	// All yields every contained coordinate once, in offset order.
	All() iter.Seq[hex.Coord]
	// Offset returns the storage index of c, or false if c is outside.
	Offset(c hex.Coord) (int, bool)
	// Contains reports whether c lies inside the layout.
	Contains(c hex.Coord) bool
	// Center returns the coordinate generation starts from.
	Center() hex.Coord
	// Rows returns the coordinates grouped into text lines, top to bottom.
	Rows() []Row
	String() string
}

// Row is one rendered line of a layout: Indent blank columns followed by the
// cells, each cell two columns wide.
type Row struct {
	Indent int
	Coords []hex.Coord
}

package layout

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/hexforge/hex"
)

// Hexagonal is a hexagon of side Radius centered on the origin: every
// coordinate within distance Radius-1 of hex.Zero. Radius 1 is a single cell.
//
// Storage puts the center at offset 0, followed by three rhombi of
// Radius×(Radius-1) cells each. Rhombus 0 is {1 <= Q <= Radius-1,
// -(Radius-1) <= R <= 0}; rhombi 1 and 2 are rhombus 0 turned by 120° and 240°.
type Hexagonal struct {
	Radius int
}

// NewHexagonal validates the radius: at least 1, and no more than MaxSize
// cells in total.
func NewHexagonal(radius int) (Hexagonal, error) {
	if radius < 1 {
		return Hexagonal{}, fmt.Errorf("hexagonal radius %d: %w", radius, ErrInvalidSize)
	}
	if r := int64(radius); r > MaxSize || 3*r*(r-1)+1 > MaxSize {
		return Hexagonal{}, fmt.Errorf("hexagonal radius %d exceeds %d cells: %w", radius, MaxSize, ErrInvalidSize)
	}
	return Hexagonal{Radius: radius}, nil
}

// Size is 3R(R-1)+1, or 0 for a radius below 1.
// Complexity: O(1).
func (h Hexagonal) Size() int {
	if h.Radius < 1 {
		return 0
	}
	return 3*h.Radius*(h.Radius-1) + 1
}

// Contains reports whether c is within distance Radius-1 of the origin.
// Complexity: O(1).
func (h Hexagonal) Contains(c hex.Coord) bool {
	return c.Length() <= h.Radius-1
}

// Center is always hex.Zero.
func (h Hexagonal) Center() hex.Coord {
	return hex.Zero
}

// rhombusOf returns which rhombus c lies in and c turned back into rhombus 0.
// c must be non-zero.
func rhombusOf(c hex.Coord) (int, hex.Coord) {
	q, r, s := c.Q, c.R, c.S()
	switch {
	case q > 0 && r <= 0:
		return 0, c
	case r > 0 && s <= 0:
		return 1, hex.Coord{Q: r, R: s}
	default:
		return 2, hex.Coord{Q: s, R: q}
	}
}

// fromRhombus turns a rhombus-0 coordinate into rhombus k.
func fromRhombus(k int, a hex.Coord) hex.Coord {
	switch k {
	case 1:
		return hex.Coord{Q: a.S(), R: a.Q}
	case 2:
		return hex.Coord{Q: a.R, R: a.S()}
	default:
		return a
	}
}

// Offset maps c to its storage index: 0 for the center, then rhombus by
// rhombus, Q-major within each.
// Complexity: O(1).
func (h Hexagonal) Offset(c hex.Coord) (int, bool) {
	if !h.Contains(c) {
		return 0, false
	}
	if c == hex.Zero {
		return 0, true
	}
	n := h.Radius - 1
	k, a := rhombusOf(c)
	return 1 + k*h.Radius*n + (a.Q-1)*h.Radius + a.R + n, true
}

// All yields the coordinates in Offset order.
func (h Hexagonal) All() iter.Seq[hex.Coord] {
	return func(yield func(hex.Coord) bool) {
		if h.Radius < 1 || !yield(hex.Zero) {
			return
		}
		n := h.Radius - 1
		for k := 0; k < 3; k++ {
			for q := 1; q <= n; q++ {
				for r := -n; r <= 0; r++ {
					if !yield(fromRhombus(k, hex.Coord{Q: q, R: r})) {
						return
					}
				}
			}
		}
	}
}

// Rows renders the hexagon point-up: row r runs from -(R-1) to R-1 and is
// indented |r| columns.
func (h Hexagonal) Rows() []Row {
	if h.Radius < 1 {
		return nil
	}
	n := h.Radius - 1
	rows := make([]Row, 0, 2*n+1)
	for r := -n; r <= n; r++ {
		lo, hi := max(-n, -n-r), min(n, n-r)
		coords := make([]hex.Coord, 0, hi-lo+1)
		for q := lo; q <= hi; q++ {
			coords = append(coords, hex.Coord{Q: q, R: r})
		}
		indent := r
		if indent < 0 {
			indent = -indent
		}
		rows = append(rows, Row{Indent: indent, Coords: coords})
	}
	return rows
}

// MirrorCenters returns the six lattice translations under which the hexagon
// tiles the plane: the rotations of (2R-1, -(R-1)).
func (h Hexagonal) MirrorCenters() [6]hex.Coord {
	base := hex.Coord{Q: 2*h.Radius - 1, R: -(h.Radius - 1)}
	var out [6]hex.Coord
	for k := range out {
		out[k] = hex.Rotation(k).Apply(base)
	}
	return out
}

// Wrap returns the image of c inside the hexagon when the plane is tiled by
// copies of it. Contained coordinates are returned unchanged; otherwise the
// nearest mirror center (lowest rotation index on ties) is subtracted until
// the result is inside.
func (h Hexagonal) Wrap(c hex.Coord) hex.Coord {
	centers := h.MirrorCenters()
	for !h.Contains(c) {
		best := centers[0]
		bestDist := c.Distance(best)
		for _, m := range centers[1:] {
			if d := c.Distance(m); d < bestDist {
				best, bestDist = m, d
			}
		}
		c = c.Sub(best)
	}
	return c
}

func (h Hexagonal) String() string {
	return fmt.Sprintf("Hexagonal(%d)", h.Radius)
}

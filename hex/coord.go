package hex

import (
	"fmt"
	"iter"
)

// Coord is an axial hex coordinate. The zero value is the origin.
type Coord struct {
	Q, R int
}

// Zero is the origin of the lattice.
var Zero = Coord{}

// FromCube converts cube coordinates to axial form.
// Panics if q+r+s != 0.
func FromCube(q, r, s int) Coord {
	if q+r+s != 0 {
		panic(fmt.Sprintf("hex: cube coordinate (%d,%d,%d) does not sum to zero", q, r, s))
	}
	return Coord{Q: q, R: r}
}

// S returns the derived third cube component.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns c-o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Q: c.Q - o.Q, R: c.R - o.R}
}

// Scale returns c multiplied by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k}
}

// Neg returns -c.
func (c Coord) Neg() Coord {
	return Coord{Q: -c.Q, R: -c.R}
}

// Length returns the distance from the origin.
func (c Coord) Length() int {
	return (abs(c.Q) + abs(c.R) + abs(c.S())) / 2
}

// Distance returns the number of single neighbor steps on a shortest path
// between c and o: half the cube Manhattan distance.
// Complexity: O(1).
func (c Coord) Distance(o Coord) int {
	return c.Sub(o).Length()
}

// Neighbor returns the adjacent coordinate in direction d.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Offset())
}

// Neighbors yields the six adjacent coordinates in Direction order.
func (c Coord) Neighbors() iter.Seq2[Direction, Coord] {
	return func(yield func(Direction, Coord) bool) {
		for d := Direction(0); d < DirectionCount; d++ {
			if !yield(d, c.Neighbor(d)) {
				return
			}
		}
	}
}

// Less orders coordinates by ascending (Q, R). It is the tie-break used
// wherever generation must be deterministic.
func (c Coord) Less(o Coord) bool {
	if c.Q != o.Q {
		return c.Q < o.Q
	}
	return c.R < o.R
}

// Compare returns -1, 0 or +1 following Less.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	default:
		return 0
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

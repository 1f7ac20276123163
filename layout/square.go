package layout

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/hexforge/hex"
)

// Square is a rectangular block of Height rows, each Width cells wide. Column
// x of row r holds axial coordinate (x - r/2, r), so odd rows sit half a cell
// to the right.
type Square struct {
	Width, Height int
}

// NewSquare validates the dimensions: both at least 1, and no more than
// MaxSize cells in total.
func NewSquare(width, height int) (Square, error) {
	if width < 1 || height < 1 {
		return Square{}, fmt.Errorf("square %dx%d: %w", width, height, ErrInvalidSize)
	}
	if width > MaxSize || height > MaxSize || int64(width)*int64(height) > MaxSize {
		return Square{}, fmt.Errorf("square %dx%d exceeds %d cells: %w", width, height, MaxSize, ErrInvalidSize)
	}
	return Square{Width: width, Height: height}, nil
}

// Size is Width×Height, or 0 if either is below 1.
// Complexity: O(1).
func (s Square) Size() int {
	if s.Width < 1 || s.Height < 1 {
		return 0
	}
	return s.Width * s.Height
}

// column returns the offset-adjusted column of c. Only meaningful for r >= 0.
func (s Square) column(c hex.Coord) int {
	return c.Q + c.R/2
}

// Contains reports whether c falls on one of the rows and columns.
// Complexity: O(1).
func (s Square) Contains(c hex.Coord) bool {
	if c.R < 0 || c.R >= s.Height {
		return false
	}
	x := s.column(c)
	return x >= 0 && x < s.Width
}

// Offset is R*Width + Q + R/2 for contained coordinates.
func (s Square) Offset(c hex.Coord) (int, bool) {
	if !s.Contains(c) {
		return 0, false
	}
	return c.R*s.Width + s.column(c), true
}

// All scans rows top to bottom, columns left to right.
func (s Square) All() iter.Seq[hex.Coord] {
	return func(yield func(hex.Coord) bool) {
		for r := 0; r < s.Height; r++ {
			for x := 0; x < s.Width; x++ {
				if !yield(hex.Coord{Q: x - r/2, R: r}) {
					return
				}
			}
		}
	}
}

// Center is the middle column of the middle row, rounding down.
func (s Square) Center() hex.Coord {
	r := s.Height / 2
	return hex.Coord{Q: s.Width/2 - r/2, R: r}
}

// Rows returns one Row per storage row; odd rows are indented one column.
func (s Square) Rows() []Row {
	if s.Size() == 0 {
		return nil
	}
	rows := make([]Row, s.Height)
	for r := 0; r < s.Height; r++ {
		coords := make([]hex.Coord, s.Width)
		for x := range coords {
			coords[x] = hex.Coord{Q: x - r/2, R: r}
		}
		rows[r] = Row{Indent: r % 2, Coords: coords}
	}
	return rows
}

func (s Square) String() string {
	return fmt.Sprintf("Square(%dx%d)", s.Width, s.Height)
}

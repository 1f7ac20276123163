package regions

import "errors"

var (
	// ErrEmptyRegion indicates a Bridge endpoint set with no cells.
	ErrEmptyRegion = errors.New("regions: empty region")
	// ErrOutsideGrid indicates a Bridge endpoint outside the grid layout.
	ErrOutsideGrid = errors.New("regions: coordinate outside grid")
	// ErrNoPath indicates no chain of cells joins the two regions.
	ErrNoPath = errors.New("regions: no path between regions")
)

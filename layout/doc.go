// Package layout maps hex coordinates onto linear storage offsets.
//
// What:
//
//   - Layout is the shape contract shared by every grid: size, canonical scan
//     order, offset lookup, containment, center and text rows.
//   - Square is a Width×Height block of offset rows (odd rows shifted half a
//     cell), addressed in axial coordinates.
//   - Hexagonal is a hexagon of side Radius centered on the origin. It also
//     computes toroidal wrapping: every lattice point has exactly one image
//     inside the hexagon.
//
// Invariants:
//
//   - Offset(c) is defined iff Contains(c), and is a bijection between the
//     contained coordinates and 0..Size()-1.
//   - All() yields coordinates in ascending offset order, identically on every
//     call; generators rely on it as a deterministic tie-break.
//
// Complexity:
//
//   - Size, Offset, Contains, Center: O(1).
//   - All, Rows: O(Size()).
//   - Wrap: O(d/R) subtractions for a point at distance d.
//
// Errors:
//
//   - ErrInvalidSize: a dimension is smaller than 1.
package layout

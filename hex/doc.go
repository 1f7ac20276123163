// Package hex provides axial hexagonal coordinates and the symmetry group of
// the hexagonal lattice.
//
// What:
//
//   - Coord is an immutable axial pair (Q, R); the third cube component is
//     derived as S = -Q-R, so Q+R+S == 0 always holds.
//   - Direction enumerates the six neighbor offsets in a fixed order where
//     d and (d+3)%6 are opposite.
//   - Transform is one of the 12 rotations/reflections of the lattice, stored
//     as a 3×3 integer matrix acting on cube coordinates.
//
// Why:
//
//   - Tile extraction needs every symmetric variant of a neighborhood.
//   - Grid layouts need exact integer distance and rotation to compute
//     storage offsets and toroidal wrapping.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
//
// Panics:
//
//   - FromCube panics when q+r+s != 0; such a triple is not a lattice point and
//     indicates a programming error rather than bad input.
package hex

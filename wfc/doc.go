// Package wfc implements Wave-Function-Collapse generation of hexagonal
// terrain from a small sample grid.
//
// What:
//
//   - ExtractTiles reads every 7-cell neighborhood (center plus six
//     neighbors) of a toroidally wrapped sample under a set of lattice
//     symmetries, and keeps one Tile per distinct value signature.
//   - NewTemplate sorts and deduplicates the tiles and precomputes, for every
//     tile and direction, the bitset of tiles allowed next to it.
//   - Generator runs the search over an output layout: each Step collapses the
//     most constrained pending cell to a random allowed tile, or rewinds the
//     latest decision when a cell runs out of alternatives.
//   - Seed captures the output shape and RNG state as short base32 text.
//
// Determinism:
//
//   - Tile IDs follow the lexicographic order of signatures, and the next cell
//     is the pending one with the lowest (count, Q, R). Together with a PCG
//     stream seeded from Seed.RNG, the same sample and seed always produce the
//     same map.
//
// Concurrency:
//
//   - A Template is immutable once built and may be shared by any number of
//     generators on different goroutines.
//   - A Generator is single-threaded. There is no cancellation primitive: stop
//     calling Step (or cancel the context given to Run).
//
// Complexity:
//
//   - NewTemplate: O(N²·6) signature comparisons for N distinct tiles.
//   - Step: O(P + N/64) for P pending cells.
//
// Errors:
//
//   - ErrEmptySample, ErrEmptyTemplate: nothing to learn from.
//   - ErrSeedLayoutMismatch: a seed's shape does not fit the requested layout type.
//   - ErrSeedEncoding, ErrSeedShape: malformed seed text or binary.
//   - ErrIncomplete: Export before every cell collapsed.
//   - ErrOutsideLayout: a start coordinate outside the output layout.
//
// Panics are reserved for broken state-machine invariants (a collapsed cell
// selected again, a rewind with an empty trail).
package wfc

// Package regions finds connected areas of equal value on any hexforge grid,
// using the six-neighbor hex adjacency.
//
// What:
//
//   - Components groups every cell into maximal connected regions whose
//     members are pairwise "same" through a chain of neighbors.
//   - Count tallies regions per value, e.g. how many separate lakes a
//     generated map has.
//   - Rank and Largest order the regions of one value by size.
//   - Bridge finds the cheapest chain of cells joining two regions, where
//     entering a "free" cell costs 0 and any other cell costs 1 (0-1 BFS).
//
// Why:
//
//   - Map review: fragmented terrain (many one-cell forests) is easy to spot
//     from region counts.
//   - Post-processing: Bridge tells how many cells to convert to connect two
//     land masses.
//
// Complexity:
//
//   - Components, Count: O(N·6) time, O(N) memory for N cells.
//   - Rank, Largest:     O(N·6 + K log K) time for K matching regions.
//   - Bridge:            O(N·6) time, O(N) memory.
//
// Errors:
//
//   - ErrEmptyRegion: Bridge was given no source or no target cell.
//   - ErrOutsideGrid: a Bridge endpoint lies outside the grid.
//   - ErrNoPath: the target cannot be reached.
package regions

// Package hexforge generates hexagonal terrain maps by Wave-Function-Collapse
// from a small hand-drawn (or noise-made) sample.
//
// 🚀 What is hexforge?
//
//	A pure-Go generator that learns 7-cell neighborhoods from a sample and
//	tiles a new map of any hexagonal or rectangular shape with them:
//		• Coordinates & symmetries: axial hex coordinates, 12 lattice transforms
//		• Layouts: hexagon of radius R, W×H offset rectangle, toroidal wrap
//		• Templates: deduplicated tiles with directional compatibility bitsets
//		• Generator: step-wise collapse with backtracking, reproducible seeds
//		• Tooling: text samples, noise samples, region analysis, HTTP API
//
// ✨ Why hexforge?
//
//   - Reproducible - a short base32 seed replays a map exactly
//   - Inspectable - Step one decision at a time, check invariants in tests
//   - Shareable - one Template serves any number of concurrent generators
//
// Packages:
//
//	hex/      axial coordinates, directions, dihedral transforms
//	layout/   Hexagonal and Square layouts
//	grid/     dense grids over a layout, toroidal Wrap
//	bitset/   tile sets with cached popcount
//	wfc/      tiles, templates, the generator and seeds
//	sample/   text parse/dump and noise samples
//	terrain/  the default six-kind palette
//	regions/  connected regions and bridges
//	server/   HTTP API
//
// This root package registers Generate as a Cloud Function; cmd/hexforge is
// the command-line tool and cmd/hexforged the standalone daemon.
//
// Quick ASCII example (radius 3, default palette):
//
//	  ~ ~ .
//	 ~ . , ,
//	. , , T T
//	 , T T ^
//	  T ^ ^
//
//	go install github.com/katalvlaran/hexforge/cmd/hexforge@latest
package hexforge

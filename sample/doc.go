// Package sample reads and writes hexforge grids as text, and synthesizes
// sample grids from simplex noise.
//
// Text format:
//
//	A hexagonal grid of radius R is 2R-1 lines. The line of row r
//	(r from -(R-1) to R-1) starts with |r| spaces and holds 2R-1-|r|
//	single-character symbols separated by single spaces:
//
//	    ~ ~ .
//	   ~ . , ,
//	  . , , T T
//	   , , T ^
//	    , T ^
//
// Symbols are mapped to values by a caller-supplied table (see the terrain
// package for the default palette). Dump writes any grid back using its
// layout's Rows; a parsed hexagonal grid dumps to the exact input text.
//
// Errors:
//
//   - ErrEmptySample: no rows.
//   - ErrMalformedRow: wrong row count, indentation, width or separator;
//     wrapped with the 1-based line number.
//   - ErrUnknownSymbol: a symbol missing from the table.
//   - ErrUnknownValue: Dump met a value missing from the table.
package sample

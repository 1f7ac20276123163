package sample

import "errors"

var (
	// ErrEmptySample indicates text with no rows.
	ErrEmptySample = errors.New("sample: empty sample")

	// ErrMalformedRow indicates a row that does not fit the hexagonal shape.
	ErrMalformedRow = errors.New("sample: malformed row")

	// ErrUnknownSymbol indicates a symbol with no value in the symbol table.
	ErrUnknownSymbol = errors.New("sample: unknown symbol")

	// ErrUnknownValue indicates a value with no symbol in the glyph table.
	ErrUnknownValue = errors.New("sample: unknown value")

	// ErrInvalidLevels indicates a noise sample requested with no levels.
	ErrInvalidLevels = errors.New("sample: no levels")
)

package wfc

import "errors"

var (
	// ErrEmptySample indicates a sample too small to hold a full neighborhood.
	ErrEmptySample = errors.New("wfc: sample has no cells")

	// ErrEmptyTemplate indicates a template with no tiles.
	ErrEmptyTemplate = errors.New("wfc: template has no tiles")

	// ErrSeedLayoutMismatch indicates the seed's shape differs from the layout
	// type the generator was asked for.
	ErrSeedLayoutMismatch = errors.New("wfc: seed shape does not match layout type")

	// ErrSeedEncoding indicates seed text or bytes that cannot be decoded.
	ErrSeedEncoding = errors.New("wfc: malformed seed encoding")

	// ErrSeedShape indicates an unknown shape or a non-positive dimension.
	ErrSeedShape = errors.New("wfc: invalid seed shape")

	// ErrIncomplete indicates Export was called before generation finished.
	ErrIncomplete = errors.New("wfc: generation incomplete")

	// ErrOutsideLayout indicates a coordinate outside the output layout.
	ErrOutsideLayout = errors.New("wfc: coordinate outside layout")
)

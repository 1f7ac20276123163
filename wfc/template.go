package wfc

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/hexforge/bitset"
	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// TileDetails is one catalogued tile: its signature and, per direction, the
// set of tile IDs allowed on that side.
type TileDetails[T cmp.Ordered] struct {
	Signature Signature[T]
	compat    [hex.DirectionCount]*bitset.Set
}

// Contribution is the value written into the output when a cell collapses to
// this tile.
func (d TileDetails[T]) Contribution() T {
	return d.Signature.Center()
}

// Template is the catalogue of distinct tiles sorted by signature, with
// pairwise directional compatibility. It is immutable after construction and
// safe for concurrent use.
type Template[T cmp.Ordered] struct {
	tiles []TileDetails[T]
}

// NewTemplate sorts and deduplicates tiles by signature and computes every
// directional compatibility set. Tile IDs are indices into that sorted order,
// so they only depend on the set of signatures.
// Complexity: O(N²·6·7) for N distinct tiles, O(N²·6/64) words of memory.
func NewTemplate[T cmp.Ordered](tiles []Tile[T]) (*Template[T], error) {
	sigs := make([]Signature[T], len(tiles))
	for i, t := range tiles {
		sigs[i] = t.Signature()
	}
	return newTemplateFromSignatures(sigs)
}

func newTemplateFromSignatures[T cmp.Ordered](sigs []Signature[T]) (*Template[T], error) {
	slices.SortFunc(sigs, Signature[T].Compare)
	sigs = slices.Compact(sigs)
	if len(sigs) == 0 {
		return nil, ErrEmptyTemplate
	}

	n := len(sigs)
	tpl := &Template[T]{tiles: make([]TileDetails[T], n)}
	for i, s := range sigs {
		tpl.tiles[i].Signature = s
		for d := range tpl.tiles[i].compat {
			tpl.tiles[i].compat[d] = bitset.New(n)
		}
	}
	// compat(i, j, d) == compat(j, i, opposite(d)), so each unordered pair is
	// tested once per direction.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for _, d := range hex.Directions() {
				if !sigs[i].Compatible(sigs[j], d) {
					continue
				}
				tpl.tiles[i].compat[d].Set(j)
				tpl.tiles[j].compat[d.Opposite()].Set(i)
			}
		}
	}
	return tpl, nil
}

// TemplateOption customizes BuildTemplate.
type TemplateOption func(*templateConfig)

type templateConfig struct {
	transforms []hex.Transform
}

// WithTransforms restricts tile extraction to the given symmetries instead of
// the full 12-element set. Panics if none are given.
func WithTransforms(ts ...hex.Transform) TemplateOption {
	if len(ts) == 0 {
		panic("wfc: WithTransforms()")
	}
	cp := slices.Clone(ts)
	return func(c *templateConfig) {
		c.transforms = cp
	}
}

// BuildTemplate extracts tiles from sample and catalogues them. By default
// every transform in hex.Transforms is used.
func BuildTemplate[T cmp.Ordered](sample *grid.Grid[layout.Hexagonal, T], opts ...TemplateOption) (*Template[T], error) {
	cfg := templateConfig{transforms: hex.Transforms()}
	for _, opt := range opts {
		opt(&cfg)
	}
	tiles, err := ExtractTiles(sample, cfg.transforms)
	if err != nil {
		return nil, fmt.Errorf("build template: %w", err)
	}
	return NewTemplate(tiles)
}

// Len returns the number of available tiles.
func (t *Template[T]) Len() int {
	return len(t.tiles)
}

// Contribution returns the output value of tile id.
func (t *Template[T]) Contribution(id int) T {
	return t.tiles[id].Contribution()
}

// Signature returns the seven values of tile id.
func (t *Template[T]) Signature(id int) Signature[T] {
	return t.tiles[id].Signature
}

// Compat returns the tiles allowed in direction d of tile id. The returned set
// is shared; callers must not modify it.
func (t *Template[T]) Compat(id int, d hex.Direction) *bitset.Set {
	return t.tiles[id].compat[d]
}

// Tiles yields every tile ID with its details in ID order.
func (t *Template[T]) Tiles() iter.Seq2[int, TileDetails[T]] {
	return func(yield func(int, TileDetails[T]) bool) {
		for i, d := range t.tiles {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Contributions returns the distinct output values in ascending order.
func (t *Template[T]) Contributions() []T {
	out := make([]T, 0, len(t.tiles))
	for _, d := range t.tiles {
		out = append(out, d.Contribution())
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Package terrain is the default value palette for hexforge samples: six
// terrain kinds ordered from lowest to highest ground, each with a one-rune
// glyph for the sample text format.
package terrain

import "fmt"

// Kind is one terrain type. The zero value is Water.
type Kind uint8

const (
	Water Kind = iota
	Sand
	Grass
	Forest
	Mountain
	Snow

	kindCount
)

var glyphs = [kindCount]rune{'~', '.', ',', 'T', '^', '*'}

var names = [kindCount]string{"water", "sand", "grass", "forest", "mountain", "snow"}

// Kinds returns every kind from lowest to highest.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Glyph returns the rune used for k in sample text.
func (k Kind) Glyph() rune {
	if k >= kindCount {
		return '?'
	}
	return glyphs[k]
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return names[k]
}

// Symbols maps glyphs to kinds, for sample.Parse.
func Symbols() map[rune]Kind {
	m := make(map[rune]Kind, kindCount)
	for i, g := range glyphs {
		m[g] = Kind(i)
	}
	return m
}

// Glyphs maps kinds to glyphs, for sample.Dump.
func Glyphs() map[Kind]rune {
	m := make(map[Kind]rune, kindCount)
	for i, g := range glyphs {
		m[Kind(i)] = g
	}
	return m
}

// Parse returns the kind named s (as printed by String) or drawn as the
// single glyph s.
func Parse(s string) (Kind, error) {
	for i, n := range names {
		if n == s || string(glyphs[i]) == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("terrain: unknown kind %q", s)
}

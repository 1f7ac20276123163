package sample_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
	"github.com/katalvlaran/hexforge/sample"
	"github.com/katalvlaran/hexforge/terrain"
)

const golden = "../testdata/test.txt"

func TestParseFile_GoldenRoundTrip(t *testing.T) {
	want, err := os.ReadFile(golden)
	require.NoError(t, err)

	g, err := sample.ParseFile(golden, terrain.Symbols())
	require.NoError(t, err)
	require.Equal(t, 5, g.Layout().Radius)
	require.Equal(t, 61, g.Len())
	require.Equal(t, terrain.Forest, g.Get(hex.Zero))
	require.Equal(t, terrain.Water, g.Get(hex.Coord{Q: 0, R: -4}))
	require.Equal(t, terrain.Snow, g.Get(hex.Coord{Q: 0, R: 4}))

	got, err := sample.DumpString(g, terrain.Glyphs())
	require.NoError(t, err)
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SmallHexagon(t *testing.T) {
	text := " a b\nc d e\n f g\n"
	g, err := sample.Parse(text, map[rune]string{
		'a': "a", 'b': "b", 'c': "c", 'd': "d", 'e': "e", 'f': "f", 'g': "g",
	})
	require.NoError(t, err)
	require.Equal(t, layout.Hexagonal{Radius: 2}, g.Layout())

	want := map[hex.Coord]string{
		{Q: 0, R: -1}: "a", {Q: 1, R: -1}: "b",
		{Q: -1, R: 0}: "c", {Q: 0, R: 0}: "d", {Q: 1, R: 0}: "e",
		{Q: -1, R: 1}: "f", {Q: 0, R: 1}: "g",
	}
	for c, v := range want {
		require.Equal(t, v, g.Get(c), "at %v", c)
	}

	// CRLF and a missing final newline are accepted.
	g2, err := sample.Parse(" a b\r\nc d e\r\n f g", map[rune]string{
		'a': "a", 'b': "b", 'c': "c", 'd': "d", 'e': "e", 'f': "f", 'g': "g",
	})
	require.NoError(t, err)
	require.Equal(t, g.Values(), g2.Values())
}

func TestParse_Errors(t *testing.T) {
	sym := terrain.Symbols()
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", sample.ErrEmptySample},
		{"blank lines", "\n\n", sample.ErrEmptySample},
		{"even rows", " ~ ~\n~ ~ ~\n", sample.ErrMalformedRow},
		{"bad indent", "~ ~\n~ ~ ~\n ~ ~\n", sample.ErrMalformedRow},
		{"short row", " ~ ~\n~ ~\n ~ ~\n", sample.ErrMalformedRow},
		{"long row", " ~ ~\n~ ~ ~ ~\n ~ ~\n", sample.ErrMalformedRow},
		{"missing separator", " ~~\n~ ~ ~\n ~ ~\n", sample.ErrMalformedRow},
		{"double separator", " ~  ~\n~ ~ ~\n ~ ~\n", sample.ErrMalformedRow},
		{"unknown symbol", " ~ ~\n~ X ~\n ~ ~\n", sample.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sample.Parse(tc.text, sym)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParse_ErrorNamesLine(t *testing.T) {
	_, err := sample.Parse(" ~ ~\n~ X ~\n ~ ~\n", terrain.Symbols())
	require.ErrorContains(t, err, "line 2")
}

func TestParseFile_Missing(t *testing.T) {
	_, err := sample.ParseFile("does-not-exist.txt", terrain.Symbols())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDump_Square(t *testing.T) {
	l := layout.Square{Width: 3, Height: 3}
	g := grid.FromFunc(l, func(c hex.Coord) int { return c.R })
	var buf bytes.Buffer
	require.NoError(t, sample.Dump(&buf, g, map[int]rune{0: 'a', 1: 'b', 2: 'c'}))
	require.Equal(t, "a a a\n b b b\nc c c\n", buf.String())
}

func TestDump_UnknownValue(t *testing.T) {
	g := grid.New(layout.Hexagonal{Radius: 2}, terrain.Kind(99))
	_, err := sample.DumpString(g, terrain.Glyphs())
	require.ErrorIs(t, err, sample.ErrUnknownValue)

	var buf bytes.Buffer
	require.ErrorIs(t, sample.Dump(&buf, g, terrain.Glyphs()), sample.ErrUnknownValue)
	require.Zero(t, buf.Len())
}

func TestNoise_Deterministic(t *testing.T) {
	levels := terrain.Kinds()
	a, err := sample.Noise(6, 42, levels)
	require.NoError(t, err)
	b, err := sample.Noise(6, 42, levels)
	require.NoError(t, err)
	require.Equal(t, layout.Hexagonal{Radius: 6}, a.Layout())
	if diff := cmp.Diff(a.Values(), b.Values()); diff != "" {
		t.Errorf("same seed differs (-a +b):\n%s", diff)
	}

	// Every value is one of the levels and the dump parses back.
	text, err := sample.DumpString(a, terrain.Glyphs())
	require.NoError(t, err)
	back, err := sample.Parse(text, terrain.Symbols())
	require.NoError(t, err)
	require.Equal(t, a.Values(), back.Values())
}

func TestNoise_SingleLevel(t *testing.T) {
	g, err := sample.Noise(3, 1, []string{"only"}, sample.WithOctaves(1), sample.WithFrequency(0.5))
	require.NoError(t, err)
	for _, v := range g.All() {
		require.Equal(t, "only", v)
	}
}

func TestNoise_Errors(t *testing.T) {
	_, err := sample.Noise(0, 1, terrain.Kinds())
	require.ErrorIs(t, err, layout.ErrInvalidSize)
	_, err = sample.Noise[terrain.Kind](3, 1, nil)
	require.ErrorIs(t, err, sample.ErrInvalidLevels)

	require.Panics(t, func() { sample.WithFrequency(0) })
	require.Panics(t, func() { sample.WithOctaves(0) })
	require.Panics(t, func() { sample.WithPersistence(1.5) })
}

package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/terrain"
)

func TestPalette_Bijective(t *testing.T) {
	sym, gl := terrain.Symbols(), terrain.Glyphs()
	require.Len(t, sym, len(terrain.Kinds()))
	require.Len(t, gl, len(terrain.Kinds()))
	for _, k := range terrain.Kinds() {
		r := k.Glyph()
		require.Equal(t, r, gl[k])
		require.Equal(t, k, sym[r])
	}
}

func TestKind_Order(t *testing.T) {
	ks := terrain.Kinds()
	for i := 1; i < len(ks); i++ {
		require.Less(t, ks[i-1], ks[i])
	}
	require.Equal(t, terrain.Water, ks[0])
	require.Equal(t, terrain.Snow, ks[len(ks)-1])
}

func TestParse(t *testing.T) {
	k, err := terrain.Parse("forest")
	require.NoError(t, err)
	require.Equal(t, terrain.Forest, k)

	k, err = terrain.Parse("^")
	require.NoError(t, err)
	require.Equal(t, terrain.Mountain, k)

	_, err = terrain.Parse("lava")
	require.Error(t, err)
	require.Equal(t, "Kind(42)", terrain.Kind(42).String())
	require.Equal(t, '?', terrain.Kind(42).Glyph())
}

package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

func TestNew_FillAndAccess(t *testing.T) {
	g := grid.New(layout.Square{Width: 3, Height: 2}, 'x')
	require.Equal(t, 6, g.Len())

	c := hex.Coord{Q: 1, R: 1}
	require.True(t, g.Set(c, 'y'))
	v, ok := g.At(c)
	require.True(t, ok)
	require.Equal(t, 'y', v)
	require.Equal(t, 'y', g.Get(c))

	require.False(t, g.Set(hex.Coord{Q: 9, R: 9}, 'z'))
	_, ok = g.At(hex.Coord{Q: 9, R: 9})
	require.False(t, ok)
	require.Nil(t, g.Ptr(hex.Coord{Q: 9, R: 9}))
	require.Panics(t, func() { g.Get(hex.Coord{Q: -5, R: 0}) })

	*g.Ptr(hex.Zero) = 'p'
	require.Equal(t, 'p', g.Get(hex.Zero))
}

func TestFromFunc_AllRoundTrip(t *testing.T) {
	l := layout.Hexagonal{Radius: 3}
	g := grid.FromFunc(l, func(c hex.Coord) hex.Coord { return c })
	n := 0
	for c, v := range g.All() {
		require.Equal(t, c, v)
		n++
	}
	require.Equal(t, l.Size(), n)
}

func TestFromValues(t *testing.T) {
	l := layout.Hexagonal{Radius: 2}
	_, err := grid.FromValues(l, []int{1, 2})
	require.Error(t, err)

	vals := []int{0, 1, 2, 3, 4, 5, 6}
	g, err := grid.FromValues(l, vals)
	require.NoError(t, err)
	vals[0] = 99
	require.Equal(t, 0, g.Get(hex.Zero), "FromValues must copy its input")
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6}, g.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneAndMap_DoNotAlias(t *testing.T) {
	g := grid.New(layout.Hexagonal{Radius: 2}, 1)
	c := g.Clone()
	c.Set(hex.Zero, 5)
	require.Equal(t, 1, g.Get(hex.Zero))

	m := grid.Map(g, func(_ hex.Coord, v int) string {
		if v == 1 {
			return "one"
		}
		return "?"
	})
	require.Equal(t, g.Layout(), m.Layout())
	for _, v := range m.All() {
		require.Equal(t, "one", v)
	}
}

// TestWrap_ToroidalConsistency checks that the outer ring of a wrapped grid
// mirrors the original through Hexagonal.Wrap.
func TestWrap_ToroidalConsistency(t *testing.T) {
	for _, radius := range []int{1, 2, 4, 5} {
		inner := layout.Hexagonal{Radius: radius}
		off := 0
		g := grid.FromFunc(inner, func(hex.Coord) int { off++; return off })
		w := grid.Wrap(g)
		require.Equal(t, radius+1, w.Layout().Radius)

		for c, v := range w.All() {
			if inner.Contains(c) {
				require.Equal(t, g.Get(c), v, "inner cell %v changed", c)
				continue
			}
			want, ok := g.At(inner.Wrap(c))
			require.True(t, ok)
			require.Equal(t, want, v, "outer cell %v", c)
		}
	}
}

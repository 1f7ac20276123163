package hex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/hex"
)

// probe lies on no symmetry axis, so its 12 images are pairwise distinct.
var probe = hex.Coord{Q: 2, R: 1}

var samplePoints = []hex.Coord{
	{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 1}, {Q: -3, R: 5}, {Q: 4, R: -1}, {Q: -2, R: -2},
}

func TestTransforms_AreDistinctIsometries(t *testing.T) {
	ts := hex.Transforms()
	require.Len(t, ts, 12)

	images := map[hex.Coord]bool{}
	for _, tr := range ts {
		images[tr.Apply(probe)] = true
		for _, p := range samplePoints {
			require.Equal(t, p.Length(), tr.Apply(p).Length(), "%v does not preserve length", tr)
			for _, q := range samplePoints {
				require.Equal(t, p.Distance(q), tr.Apply(p).Distance(tr.Apply(q)))
			}
		}
	}
	require.Len(t, images, 12)
	require.True(t, ts[0].Equal(hex.Identity))
	require.Len(t, hex.Rotations(), 6)
}

func TestTransform_IdentityIsUnit(t *testing.T) {
	for _, tr := range hex.Transforms() {
		require.True(t, hex.Identity.Compose(tr).Equal(tr))
		require.True(t, tr.Compose(hex.Identity).Equal(tr))
		for _, p := range samplePoints {
			require.Equal(t, p, hex.Identity.Apply(p))
		}
	}
}

func TestTransform_ComposeIsAssociativeAndMatchesApply(t *testing.T) {
	ts := hex.Transforms()
	for _, a := range ts {
		for _, b := range ts {
			ab := a.Compose(b)
			for _, p := range samplePoints {
				require.Equal(t, a.Apply(b.Apply(p)), ab.Apply(p))
			}
			for _, c := range ts {
				require.True(t, ab.Compose(c).Equal(a.Compose(b.Compose(c))))
			}
		}
	}
}

func TestTransform_Inverse(t *testing.T) {
	for _, tr := range hex.Transforms() {
		require.True(t, tr.Compose(tr.Inverse()).Equal(hex.Identity), "%v", tr)
		for _, p := range samplePoints {
			require.Equal(t, p, tr.Inverse().Apply(tr.Apply(p)))
		}
	}
}

func TestRotation_StepsDirections(t *testing.T) {
	for _, d := range hex.Directions() {
		require.Equal(t, d.Rotate(1).Offset(), hex.Rotation(1).Apply(d.Offset()))
		require.Equal(t, d.Rotate(-2).Offset(), hex.Rotation(-2).Apply(d.Offset()))
	}
	require.True(t, hex.Rotation(6).Equal(hex.Identity))
	require.True(t, hex.Reflection.Compose(hex.Reflection).Equal(hex.Identity))
	require.Equal(t, hex.Coord{Q: 0, R: 1}, hex.Reflection.Apply(hex.Coord{Q: 1, R: 0}))
}

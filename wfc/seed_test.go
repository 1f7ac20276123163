package wfc_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/layout"
	"github.com/katalvlaran/hexforge/wfc"
)

func TestSeed_KnownVector(t *testing.T) {
	s, err := wfc.ParseSeed("AAEPWOIF")
	require.NoError(t, err)
	require.Equal(t, wfc.HexagonalSeed(8, 1337), s)

	b, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x08, 0xFB, 0x39, 0x05}, b)
	require.Equal(t, "AAEPWOIF", s.String())

	l, err := s.Layout()
	require.NoError(t, err)
	require.Equal(t, layout.Hexagonal{Radius: 8}, l)
}

func TestSeed_WideIntegers(t *testing.T) {
	s := wfc.SquareSeed(300, 70000, math.MaxUint64)
	b, err := s.MarshalBinary()
	require.NoError(t, err)
	want := []byte{
		0x01,
		0xFB, 0x2C, 0x01,
		0xFC, 0x70, 0x11, 0x01, 0x00,
		0xFD, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	require.Equal(t, want, b)

	var back wfc.Seed
	require.NoError(t, back.UnmarshalBinary(b))
	require.Equal(t, s, back)
}

func TestSeed_TextRoundTrip(t *testing.T) {
	seeds := []wfc.Seed{
		wfc.HexagonalSeed(1, 0),
		wfc.HexagonalSeed(250, 250),
		wfc.HexagonalSeed(251, 1<<40),
		wfc.SquareSeed(1, 1, 1),
		wfc.SquareSeed(64, 48, 0xDEADBEEF),
	}
	for _, s := range seeds {
		t.Run(s.String(), func(t *testing.T) {
			got, err := wfc.ParseSeed(s.String())
			require.NoError(t, err)
			require.Equal(t, s, got)

			js, err := json.Marshal(s)
			require.NoError(t, err)
			var fromJSON wfc.Seed
			require.NoError(t, json.Unmarshal(js, &fromJSON))
			require.Equal(t, s, fromJSON)
		})
	}
}

func TestSeed_DecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, wfc.ErrSeedEncoding},
		{"truncated", []byte{0x00}, wfc.ErrSeedEncoding},
		{"truncated wide", []byte{0x00, 0xFB, 0x01}, wfc.ErrSeedEncoding},
		{"trailing", []byte{0x00, 0x08, 0x00, 0x00}, wfc.ErrSeedEncoding},
		{"bad marker", []byte{0x00, 0xFE, 0x00}, wfc.ErrSeedEncoding},
		{"unknown shape", []byte{0x02, 0x01, 0x01}, wfc.ErrSeedShape},
		{"huge radius", []byte{0x00, 0xFD, 0, 0, 0, 0, 1, 0, 0, 0, 0x00}, wfc.ErrSeedShape},
		{"wide small radius", []byte{0x00, 0xFB, 0x08, 0x00, 0xFB, 0x39, 0x05}, wfc.ErrSeedEncoding},
		{"wide 16-bit value", []byte{0x00, 0x08, 0xFC, 0x39, 0x05, 0x00, 0x00}, wfc.ErrSeedEncoding},
		{"wide 32-bit value", []byte{0x00, 0x08, 0xFD, 0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}, wfc.ErrSeedEncoding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s wfc.Seed
			require.ErrorIs(t, s.UnmarshalBinary(tc.data), tc.want)
		})
	}

	_, err := wfc.ParseSeed("not base32!")
	require.ErrorIs(t, err, wfc.ErrSeedEncoding)

	// Same seed as AAEPWOIF with every integer widened by one marker.
	_, err = wfc.ParseSeed("AD5QQAH3HECQ")
	require.ErrorIs(t, err, wfc.ErrSeedEncoding)
}

func TestSeed_BoundaryWidths(t *testing.T) {
	for _, v := range []uint64{250, 251, math.MaxUint16, math.MaxUint16 + 1, math.MaxUint32, math.MaxUint32 + 1} {
		s := wfc.HexagonalSeed(3, v)
		got, err := wfc.ParseSeed(s.String())
		require.NoError(t, err, "rng %d", v)
		require.Equal(t, s, got)
	}
}

// TestSeed_OversizedLayout decodes seeds whose dimensions fit the wire format
// but not a layout; generation must fail with an error instead of allocating.
func TestSeed_OversizedLayout(t *testing.T) {
	tpl := goldenTemplate(t)
	for _, s := range []wfc.Seed{
		wfc.HexagonalSeed(math.MaxInt32, 1),
		wfc.SquareSeed(math.MaxInt32, math.MaxInt32, 1),
	} {
		got, err := wfc.ParseSeed(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)

		_, err = got.Layout()
		require.ErrorIs(t, err, wfc.ErrSeedShape)
		require.ErrorIs(t, err, layout.ErrInvalidSize)
	}

	_, err := wfc.NewWithSeed[layout.Hexagonal](tpl, wfc.HexagonalSeed(math.MaxInt32, 1))
	require.ErrorIs(t, err, wfc.ErrSeedShape)
	_, err = wfc.NewWithSeed[layout.Square](tpl, wfc.SquareSeed(math.MaxInt32, 2, 1))
	require.ErrorIs(t, err, wfc.ErrSeedShape)
}

func TestSeed_ShapeErrors(t *testing.T) {
	_, err := wfc.HexagonalSeed(0, 1).Layout()
	require.ErrorIs(t, err, wfc.ErrSeedShape)
	require.ErrorIs(t, err, layout.ErrInvalidSize)

	_, err = wfc.SquareSeed(3, 0, 1).Layout()
	require.ErrorIs(t, err, wfc.ErrSeedShape)

	bad := wfc.Seed{Shape: 7}
	_, err = bad.Layout()
	require.ErrorIs(t, err, wfc.ErrSeedShape)
	_, err = bad.MarshalBinary()
	require.ErrorIs(t, err, wfc.ErrSeedShape)
	require.Contains(t, bad.String(), "invalid")
	require.Equal(t, "Shape(7)", bad.Shape.String())
}

func TestSeedFor(t *testing.T) {
	s, err := wfc.SeedFor(layout.Square{Width: 5, Height: 4}, 9)
	require.NoError(t, err)
	require.Equal(t, wfc.SquareSeed(5, 4, 9), s)

	l, err := s.Layout()
	require.NoError(t, err)
	require.Equal(t, layout.Square{Width: 5, Height: 4}, l)
}

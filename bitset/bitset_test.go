package bitset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/bitset"
)

func members(s *bitset.Set) []int {
	return slices.Collect(s.All())
}

func TestFullAndEmpty(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 130} {
		f := bitset.Full(n)
		require.Equal(t, n, f.Count())
		require.Equal(t, n, f.Len())
		require.Len(t, members(f), n)
		require.False(t, f.Test(n), "index past the end must not be set")

		e := bitset.New(n)
		require.True(t, e.Empty())
		require.Empty(t, members(e))
	}
}

func TestSetClear_UpdatesCount(t *testing.T) {
	s := bitset.New(100)
	s.Set(3)
	s.Set(3)
	s.Set(64)
	s.Set(99)
	require.Equal(t, 3, s.Count())
	require.True(t, s.Test(64))
	s.Clear(64)
	s.Clear(64)
	require.Equal(t, 2, s.Count())
	require.Equal(t, []int{3, 99}, members(s))
	require.Panics(t, func() { s.Set(100) })
	require.Panics(t, func() { s.Clear(-1) })
}

func TestAndAndNotOr(t *testing.T) {
	a := bitset.New(70)
	b := bitset.New(70)
	for _, i := range []int{1, 5, 65, 69} {
		a.Set(i)
	}
	for _, i := range []int{5, 6, 69} {
		b.Set(i)
	}

	and := a.Clone()
	and.And(b)
	require.Equal(t, []int{5, 69}, members(and))
	require.Equal(t, 2, and.Count())

	diff := a.Clone()
	diff.AndNot(b)
	require.Equal(t, []int{1, 65}, members(diff))

	or := a.Clone()
	or.Or(b)
	require.Equal(t, []int{1, 5, 6, 65, 69}, members(or))

	require.Equal(t, []int{1, 5, 65, 69}, members(a), "Clone must not alias")
	require.Panics(t, func() { a.And(bitset.New(71)) })
}

func TestNth(t *testing.T) {
	s := bitset.New(200)
	want := []int{0, 7, 63, 64, 128, 199}
	for _, i := range want {
		s.Set(i)
	}
	for k, idx := range want {
		got, ok := s.Nth(k)
		require.True(t, ok)
		require.Equal(t, idx, got, "Nth(%d)", k)
	}
	_, ok := s.Nth(len(want))
	require.False(t, ok)
	_, ok = s.Nth(-1)
	require.False(t, ok)
}

func TestEqualCopyResetFill(t *testing.T) {
	a := bitset.New(10)
	a.Set(2)
	b := bitset.New(10)
	require.False(t, a.Equal(b))
	b.CopyFrom(a)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(bitset.New(11)))

	b.Fill()
	require.Equal(t, 10, b.Count())
	require.True(t, b.Equal(bitset.Full(10)))
	b.Reset()
	require.True(t, b.Empty())
	require.Equal(t, "{2} (1/10)", a.String())
}

// Package bitset implements a fixed-length bit vector with a cached population
// count, sized once at construction. It backs the tile alternative sets of the
// generator: intersection, difference and "n-th set bit" selection all run
// word-at-a-time.
//
// Sets of different lengths must not be combined; doing so panics, since it can
// only happen when two templates are mixed up.
package bitset

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const wordSize = 64

// Set is a bit vector of a fixed length.
type Set struct {
	words []uint64
	n     int
	count int
}

// New returns an empty set able to hold indices 0..n-1.
func New(n int) *Set {
	if n < 0 {
		panic("bitset: negative length")
	}
	return &Set{words: make([]uint64, (n+wordSize-1)/wordSize), n: n}
}

// Full returns a set with every index 0..n-1 present.
func Full(n int) *Set {
	s := New(n)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.trim()
	s.count = n
	return s
}

// Len returns the capacity of the set.
func (s *Set) Len() int {
	return s.n
}

// Count returns the number of members. O(1).
func (s *Set) Count() int {
	return s.count
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.count == 0
}

// Test reports whether i is a member.
func (s *Set) Test(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i/wordSize]&(1<<uint(i%wordSize)) != 0
}

// Set adds i to the set.
func (s *Set) Set(i int) {
	s.check(i)
	w, b := i/wordSize, uint64(1)<<uint(i%wordSize)
	if s.words[w]&b == 0 {
		s.words[w] |= b
		s.count++
	}
}

// Clear removes i from the set.
func (s *Set) Clear(i int) {
	s.check(i)
	w, b := i/wordSize, uint64(1)<<uint(i%wordSize)
	if s.words[w]&b != 0 {
		s.words[w] &^= b
		s.count--
	}
}

// And keeps only members also present in o.
func (s *Set) And(o *Set) {
	s.same(o)
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
	s.recount()
}

// AndNot removes every member of o.
func (s *Set) AndNot(o *Set) {
	s.same(o)
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
	s.recount()
}

// Or adds every member of o.
func (s *Set) Or(o *Set) {
	s.same(o)
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
	s.recount()
}

// Fill adds every index 0..Len()-1.
func (s *Set) Fill() {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.trim()
	s.count = s.n
}

// Reset removes every member.
func (s *Set) Reset() {
	clear(s.words)
	s.count = 0
}

// CopyFrom overwrites s with the members of o.
func (s *Set) CopyFrom(o *Set) {
	s.same(o)
	copy(s.words, o.words)
	s.count = o.count
}

// Nth returns the index of the k-th member in ascending order (k is 0-based).
// The second result is false when k is out of range.
// Complexity: O(words).
func (s *Set) Nth(k int) (int, bool) {
	if k < 0 || k >= s.count {
		return 0, false
	}
	for wi, w := range s.words {
		c := bits.OnesCount64(w)
		if k >= c {
			k -= c
			continue
		}
		for ; k > 0; k-- {
			w &= w - 1
		}
		return wi*wordSize + bits.TrailingZeros64(w), true
	}
	return 0, false
}

// All yields members in ascending order.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range s.words {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if !yield(wi*wordSize + b) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{words: make([]uint64, len(s.words)), n: s.n, count: s.count}
	copy(c.words, s.words)
	return c
}

// Equal reports whether both sets have the same length and members.
func (s *Set) Equal(o *Set) bool {
	if s.n != o.n || s.count != o.count {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	parts := make([]string, 0, s.count)
	for i := range s.All() {
		parts = append(parts, fmt.Sprint(i))
	}
	return fmt.Sprintf("{%s} (%d/%d)", strings.Join(parts, " "), s.count, s.n)
}

func (s *Set) recount() {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	s.count = n
}

// trim zeroes the bits beyond n in the last word.
func (s *Set) trim() {
	if r := s.n % wordSize; r != 0 {
		s.words[len(s.words)-1] &= (uint64(1) << uint(r)) - 1
	}
}

func (s *Set) check(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, s.n))
	}
}

func (s *Set) same(o *Set) {
	if s.n != o.n {
		panic(fmt.Sprintf("bitset: length mismatch %d != %d", s.n, o.n))
	}
}

package wfc

import (
	"math/rand/v2"
	"time"
)

// splitMix64 is the SplitMix64 finalizer; small input changes give large,
// well-distributed output changes.
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// newRNG returns the PCG stream used for tile selection. The second PCG word
// is derived from the seed so that a single uint64 fully determines the stream.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, splitMix64(seed)))
}

// freshSeed returns a new RNG seed from the clock. It is the only
// non-deterministic source in the package and is used only by NewWithLayout.
func freshSeed() uint64 {
	return splitMix64(uint64(time.Now().UnixNano()))
}

package lightsout

import "math/rand/v2"

// Source is the seeded random number generator a Session draws board
// layouts from. Implementations must be a pure function of the seed so that
// SetSeed(GetSeed()) followed by the same calls repeats the same values.
type Source interface {
	// NewSeed picks a fresh, non-deterministic seed and re-arms the generator.
	NewSeed()
	// SetSeed re-arms the generator from the given seed.
	SetSeed(seed uint32)
	// GetSeed returns the seed currently in effect.
	GetSeed() uint32
	// RndRange returns a value in [min, max] inclusive.
	RndRange(min, max uint32) uint32
}

// Random is the default Source, a PCG generator keyed by a 32-bit seed.
type Random struct {
	seed uint32
	r    *rand.Rand
}

// NewRandom creates a generator armed with a fresh seed.
func NewRandom() *Random {
	r := &Random{}
	r.NewSeed()
	return r
}

// NewRandomWithSeed creates a generator armed with the given seed.
func NewRandomWithSeed(seed uint32) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// NewSeed draws a seed from the runtime-seeded global generator.
func (r *Random) NewSeed() {
	r.SetSeed(rand.Uint32())
}

// SetSeed resets the generator state from seed.
func (r *Random) SetSeed(seed uint32) {
	r.seed = seed
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// GetSeed returns the seed last passed to SetSeed or drawn by NewSeed.
func (r *Random) GetSeed() uint32 {
	return r.seed
}

// RndRange returns a uniformly distributed value in [min, max].
// Reversed bounds are swapped.
func (r *Random) RndRange(min, max uint32) uint32 {
	if max < min {
		min, max = max, min
	}
	span := uint64(max-min) + 1
	return min + uint32(r.r.Uint64N(span))
}

package lightsout

import (
	"math"
	"testing"
)

// scriptedSource replays a fixed list of values, for tests that need exact
// generation centers.
type scriptedSource struct {
	seed   uint32
	values []uint32
	pos    int
}

func (s *scriptedSource) NewSeed() {
	s.seed++
	s.pos = 0
}

func (s *scriptedSource) SetSeed(seed uint32) {
	s.seed = seed
	s.pos = 0
}

func (s *scriptedSource) GetSeed() uint32 { return s.seed }

func (s *scriptedSource) RndRange(min, max uint32) uint32 {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return min + v%(max-min+1)
}

func draw(r Source, n int, min, max uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.RndRange(min, max)
	}
	return out
}

func TestRandomReplay(t *testing.T) {
	r := NewRandomWithSeed(2504604244)
	first := draw(r, 50, 0, 8)

	r.SetSeed(r.GetSeed())
	second := draw(r, 50, 0, 8)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Replay diverged at draw %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestRandomSameSeedSameSequence(t *testing.T) {
	a := NewRandomWithSeed(42)
	b := NewRandomWithSeed(42)

	for i := range 100 {
		if va, vb := a.RndRange(0, 100), b.RndRange(0, 100); va != vb {
			t.Fatalf("Draw %d differs: %d vs %d", i, va, vb)
		}
	}
}

func TestRandomNewSeedIsReplayable(t *testing.T) {
	r := NewRandom()
	r.NewSeed()
	seed := r.GetSeed()
	first := draw(r, 20, 0, 4)

	other := NewRandomWithSeed(seed)
	second := draw(other, 20, 0, 4)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Seed %d did not reproduce draw %d", seed, i)
		}
	}
}

func TestRandomRange(t *testing.T) {
	r := NewRandomWithSeed(7)
	seen := make(map[uint32]bool)

	for range 2000 {
		v := r.RndRange(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("RndRange(3, 7) = %d, out of range", v)
		}
		seen[v] = true
	}

	if len(seen) != 5 {
		t.Errorf("Expected all 5 values in [3, 7] to appear, saw %d", len(seen))
	}
}

func TestRandomRangeEdges(t *testing.T) {
	r := NewRandomWithSeed(1)

	tests := []struct {
		name     string
		min, max uint32
	}{
		{"single value", 4, 4},
		{"reversed bounds", 7, 3},
		{"full range", 0, math.MaxUint32},
		{"zero width at zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := tc.min, tc.max
			if hi < lo {
				lo, hi = hi, lo
			}
			for range 50 {
				v := r.RndRange(tc.min, tc.max)
				if v < lo || v > hi {
					t.Fatalf("RndRange(%d, %d) = %d", tc.min, tc.max, v)
				}
			}
		})
	}
}

package catrunner

import (
	"math"
	"math/rand/v2"
	"time"
)

// fallbackSeed replaces a zero seed; xorshift never leaves the zero state.
const fallbackSeed uint32 = 0x9E3779B9

// RNG is a deterministic xorshift32 generator. Every procedural decision
// in a run draws from one RNG, so a fixed seed replays the same run.
type RNG struct {
	state uint32
}

// NewRNG creates a generator from a seed. Zero is replaced with a fixed
// non-zero constant.
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = fallbackSeed
	}
	return &RNG{state: seed}
}

// NewSeed returns a seed mixed from the wall clock and the runtime's
// random source.
func NewSeed() uint32 {
	return FoldSeed(time.Now().UnixNano()) ^ rand.Uint32()
}

// FoldSeed reduces a 64-bit seed (CLI flags, config) to 32 bits.
func FoldSeed(seed int64) uint32 {
	u := uint64(seed) //nolint:gosec // bit reinterpretation is intended
	return uint32(u) ^ uint32(u>>32)
}

// Next advances the state and returns a float in [0, 1).
func (r *RNG) Next() float64 {
	s := r.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	r.state = s
	return float64(s) / 4294967296.0
}

// Range returns a real number in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Next()*(hi-lo)
}

// IntRange returns floor(lo + r*(hi-lo)), an integer in [lo, hi).
func (r *RNG) IntRange(lo, hi int) int {
	return int(math.Floor(float64(lo) + r.Next()*float64(hi-lo)))
}

// State returns the raw generator state.
func (r *RNG) State() uint32 {
	return r.state
}

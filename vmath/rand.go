package vmath

// Rand is the random source consumed by ball construction and reset.
// Injected so that a fixed seed replays the same game
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// FastRand is a xorshift64 generator. Not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; xorshift has no zero state, so seed 0 maps to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Range returns a uniform value in [min, min+span)
func Range(rng Rand, min, span float64) float64 {
	return min + rng.Float64()*span
}

// Sign returns +1 or -1 with equal probability
func Sign(rng Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

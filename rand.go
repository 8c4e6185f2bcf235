package klib

// Rand is a linear congruential pseudo-random generator, bit-exact with the
// runtime it ports: seed' = seed*1103515245 + 12345 over 32 bits, output
// (seed'/65536) mod 32768. It is an explicitly owned value, not a process
// global; each owner seeds and steps its own instance.
type Rand struct {
	seed uint32
}

// NewRand returns a generator with the given seed. The original runtime's
// default seed is 1.
func NewRand(seed uint32) *Rand {
	return &Rand{seed: seed}
}

// Seed resets the generator state.
func (r *Rand) Seed(seed uint32) { r.seed = seed }

// Next returns the next value in [0, 32768).
func (r *Rand) Next() int {
	r.seed = r.seed*1103515245 + 12345
	return int(r.seed / 65536 % 32768)
}

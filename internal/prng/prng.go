// Package prng implements the deterministic pseudo-random functions that all
// world content and simulation randomness derive from.
//
// Every function here is pure: the same input state always produces the same
// output. Callers that need a sequence of values keep a Stream and advance it.
package prng

// lfsrTaps is the feedback polynomial x^32 + x^22 + x^2 + x + 1, which gives
// a maximal-length 32-bit register.
const lfsrTaps uint32 = 0x80200003

// rounds is the number of register steps mixed into each output.
const rounds = 12

// LFSR advances a 32-bit Galois linear-feedback shift register by one step.
func LFSR(x uint32) uint32 {
	r := x >> 1
	if x&1 != 0 {
		r ^= lfsrTaps
	}
	return r
}

// Next derives a new state from x by feeding (x*37 + round*31) through the
// register for a fixed number of rounds.
func Next(x uint32) uint32 {
	for i := uint32(0); i < rounds; i++ {
		x = LFSR(x*37 + i*31)
	}
	return x
}

// Int returns a value in [0, upTo] picked using the given state.
// A negative bound yields 0.
func Int(x uint32, upTo int) int {
	if upTo <= 0 {
		return 0
	}
	return int(Next(x) % uint32(upTo+1))
}

// Float returns a value in [0, 1) picked using the given state.
func Float(x uint32) float64 {
	return float64(Next(x)) / 4294967296.0
}

// Flip returns true with probability p, decided by the given state.
func Flip(p float64, x uint32) bool {
	return Float(x) < p
}

// Shuffle permutes items in place with a Fisher-Yates pass. One fresh state is
// consumed per position, so identical (items, seed) pairs always produce the
// same permutation.
func Shuffle[T any](items []T, seed uint32) {
	rng := Next(seed)
	for i := range items {
		remaining := len(items) - i - 1
		choice := Int(rng, remaining)
		items[i], items[i+choice] = items[i+choice], items[i]
		rng = Next(rng)
	}
}

// TileSeed combines a world seed with both components of a tile coordinate
// through two generator passes. The y component is spread with a large odd
// constant so no x value can cancel it out.
func TileSeed(worldSeed uint32, tx, ty int) uint32 {
	h := Next(uint32(int32(tx)) + worldSeed)
	return Next(h ^ uint32(int32(ty))*0x9e3779b1)
}

// Stream is a mutable cursor over the generator. Each call to Take returns
// the current state and advances to the next one.
type Stream struct {
	state uint32
}

// NewStream creates a stream positioned at the given state.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Take returns the current state and advances the stream.
func (s *Stream) Take() uint32 {
	v := s.state
	s.state = Next(s.state)
	return v
}

// State returns the current state without advancing.
func (s *Stream) State() uint32 {
	return s.state
}

// Reseed moves the stream to a new state.
func (s *Stream) Reseed(seed uint32) {
	s.state = seed
}

// Int is shorthand for prng.Int(s.Take(), upTo).
func (s *Stream) Int(upTo int) int {
	return Int(s.Take(), upTo)
}

// Flip is shorthand for prng.Flip(p, s.Take()).
func (s *Stream) Flip(p float64) bool {
	return Flip(p, s.Take())
}

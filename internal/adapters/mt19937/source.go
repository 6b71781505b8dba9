// Package mt19937 implements the 32-bit Mersenne Twister with the
// parameters and seeding procedure of C++ std::mt19937, so a given seed
// yields the same stream as the C++ engine.
package mt19937

const (
	stateSize   = 624
	shiftSize   = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initMult    = 1812433253
	DefaultSeed = 5489
)

// Source is a 32-bit Mersenne Twister. It is not safe for concurrent use.
type Source struct {
	state [stateSize]uint32
	index int
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the state from seed.
func (s *Source) Seed(seed uint32) {
	s.state[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := s.state[i-1]
		s.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	s.index = stateSize
}

// Uint32 returns the next tempered output.
func (s *Source) Uint32() uint32 {
	if s.index >= stateSize {
		s.twist()
	}
	y := s.state[s.index]
	s.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Discard advances the engine by n outputs.
func (s *Source) Discard(n uint64) {
	for ; n > 0; n-- {
		if s.index >= stateSize {
			s.twist()
		}
		s.index++
	}
}

func (s *Source) twist() {
	for i := 0; i < stateSize; i++ {
		y := (s.state[i] & upperMask) | (s.state[(i+1)%stateSize] & lowerMask)
		v := s.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		s.state[i] = v
	}
	s.index = 0
}

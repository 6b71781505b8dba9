package pcg

import "math/rand/v2"

// streamMix derives the second PCG seed word from the first.
const streamMix = 0x9e3779b97f4a7c15

// Source adapts math/rand/v2's PCG to ports.RandomSource.
type Source struct {
	pcg *rand.PCG
}

func New(seed uint64) *Source {
	return &Source{pcg: rand.NewPCG(seed, seed^streamMix)}
}

// Uint32 returns the high half of the next 64-bit PCG output.
func (s *Source) Uint32() uint32 {
	return uint32(s.pcg.Uint64() >> 32)
}

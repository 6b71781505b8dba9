// Package geometric samples line lengths from a geometric distribution
// using the same steps as libstdc++'s std::geometric_distribution<int>
// driven by a 32-bit engine. Paired with the mt19937 adapter it yields the
// same lengths as the C++ distribution over std::mt19937.
package geometric

import (
	"fmt"
	"math"

	"github.com/hailam/linegen/internal/ports"
)

const (
	two32 = 1 << 32
	two64 = 1 << 64

	// naf is just under one half; adding it before truncation rounds an
	// integral candidate to itself.
	naf = (1 - 0x1p-52) / 2
	// Candidates at or above thr do not fit in a C int and are redrawn.
	thr = math.MaxInt32 + naf
)

// Canonical returns a float64 in [0, 1) built from two 32-bit draws,
// low word first.
func Canonical(src ports.RandomSource) float64 {
	lo := float64(src.Uint32())
	hi := float64(src.Uint32())
	u := (lo + hi*two32) / two64
	if u >= 1 {
		u = math.Nextafter(1, 0)
	}
	return u
}

// Sampler draws the number of failures before the first success.
type Sampler struct {
	p    float64
	logQ float64
}

// New returns a Sampler with success probability p, which must lie in (0, 1).
func New(p float64) (*Sampler, error) {
	if !(p > 0 && p < 1) {
		return nil, fmt.Errorf("geometric: probability %v outside (0, 1)", p)
	}
	return &Sampler{p: p, logQ: math.Log(1 - p)}, nil
}

// P returns the success probability.
func (s *Sampler) P() float64 { return s.p }

// Sample implements ports.LengthSampler.
func (s *Sampler) Sample(src ports.RandomSource) int64 {
	for {
		cand := math.Floor(math.Log(1-Canonical(src)) / s.logQ)
		if cand < thr {
			return int64(cand + naf)
		}
	}
}

package factory

import (
	"fmt"

	"github.com/hailam/linegen/internal/adapters/mt19937"
	"github.com/hailam/linegen/internal/adapters/pcg"
	"github.com/hailam/linegen/internal/ports"
)

// StaticSourceFactory provides concrete implementations for RandomSources.
type StaticSourceFactory struct {
	engines map[ports.Engine]func(seed uint64) ports.RandomSource
}

// NewStaticSourceFactory creates a new factory with the built-in engines.
func NewStaticSourceFactory() ports.SourceFactory {
	return &StaticSourceFactory{
		engines: map[ports.Engine]func(seed uint64) ports.RandomSource{
			// std::mt19937 takes a 32-bit seed; higher bits are dropped the same way.
			ports.EngineMT19937: func(seed uint64) ports.RandomSource { return mt19937.New(uint32(seed)) },
			ports.EnginePCG:     func(seed uint64) ports.RandomSource { return pcg.New(seed) },
		},
	}
}

// For returns a source of the given engine seeded with seed.
func (f *StaticSourceFactory) For(e ports.Engine, seed uint64) (ports.RandomSource, error) {
	build, ok := f.engines[e]
	if !ok {
		return nil, fmt.Errorf("unsupported engine: %s", e)
	}
	return build(seed), nil
}

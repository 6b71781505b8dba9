package ports

// RandomSource is the port for a deterministic stream of 32-bit values.
type RandomSource interface {
	Uint32() uint32
}

// Engine names a PRNG algorithm.
type Engine string

const (
	EngineMT19937 Engine = "mt19937"
	EnginePCG     Engine = "pcg"
)

// SourceFactory is the port for building seeded sources by Engine.
type SourceFactory interface {
	// For returns a source for the given engine seeded with seed, or an error if unsupported.
	For(e Engine, seed uint64) (RandomSource, error)
}

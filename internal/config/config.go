// Package config holds the fixed parameters of a corpus run. The values
// are compiled in; there are no flags, files, or environment variables.
package config

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxTotalLength = 200_000_000
	DefaultSeed           = 42
	DefaultProbability    = 0.01
	DefaultMinLineLength  = 2
	DefaultEngine         = "mt19937"
	DefaultBufferSize     = 64 * 1024
)

// Config parameterizes a corpus run.
type Config struct {
	// MaxTotalLength is the letter budget. Newlines are not counted.
	MaxTotalLength int64
	Seed           uint64
	// Probability is the success probability of the geometric line-length distribution.
	Probability   float64
	MinLineLength int64
	Engine        string
	// BufferSize is the size of the output write buffer in bytes.
	BufferSize int
}

// Default returns the parameters of the standard corpus: 200M letters, seed 42.
func Default() Config {
	return Config{
		MaxTotalLength: DefaultMaxTotalLength,
		Seed:           DefaultSeed,
		Probability:    DefaultProbability,
		MinLineLength:  DefaultMinLineLength,
		Engine:         DefaultEngine,
		BufferSize:     DefaultBufferSize,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MaxTotalLength < 0:
		return fmt.Errorf("%w: max total length %d is negative", ErrInvalidConfig, c.MaxTotalLength)
	case !(c.Probability > 0 && c.Probability < 1):
		return fmt.Errorf("%w: probability %v outside (0, 1)", ErrInvalidConfig, c.Probability)
	case c.MinLineLength < 1:
		return fmt.Errorf("%w: min line length %d is below 1", ErrInvalidConfig, c.MinLineLength)
	case c.Engine == "":
		return fmt.Errorf("%w: engine is empty", ErrInvalidConfig)
	case c.BufferSize <= 0:
		return fmt.Errorf("%w: buffer size %d is not positive", ErrInvalidConfig, c.BufferSize)
	}
	return nil
}

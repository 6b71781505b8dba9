package letters

import (
	"fmt"
	"io"
	"slices"

	"github.com/hailam/linegen/internal/adapters/progress"
	"github.com/hailam/linegen/internal/ports"
	"github.com/hailam/linegen/internal/utils"
)

// DefaultMinLineLength is the shortest line the generator emits.
const DefaultMinLineLength = 2

// Option configures a Generator.
type Option func(*Generator)

// WithEngine selects the PRNG engine requested from the SourceFactory.
func WithEngine(e ports.Engine) Option {
	return func(g *Generator) { g.engine = e }
}

// WithMinLineLength overrides the minimum line length. Values below 1 are ignored.
func WithMinLineLength(n int64) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.minLineLength = n
		}
	}
}

// WithProgress reports the letters of each emitted line to r.
func WithProgress(r ports.ProgressReporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.progress = r
		}
	}
}

// Generator emits lines of random lowercase letters whose lengths come
// from a LengthSampler, until a letter budget is spent.
type Generator struct {
	sources       ports.SourceFactory
	sampler       ports.LengthSampler
	engine        ports.Engine
	minLineLength int64
	progress      ports.ProgressReporter
}

func New(sources ports.SourceFactory, sampler ports.LengthSampler, opts ...Option) *Generator {
	g := &Generator{
		sources:       sources,
		sampler:       sampler,
		engine:        ports.EngineMT19937,
		minLineLength: DefaultMinLineLength,
		progress:      progress.Noop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements ports.CorpusGenerator.
//
// The last line may overshoot maxTotalLength by up to minLineLength-1
// letters: the remaining budget is clamped first and the minimum applied
// after.
func (g *Generator) Generate(out io.Writer, maxTotalLength int64, seed uint64) (ports.Summary, error) {
	var sum ports.Summary

	src, err := g.sources.For(g.engine, seed)
	if err != nil {
		return sum, err
	}

	var line []byte
	for sum.Letters < maxTotalLength {
		n := g.sampler.Sample(src)
		n = min(n, maxTotalLength-sum.Letters)
		if n < g.minLineLength {
			n = g.minLineLength
		}

		line = slices.Grow(line[:0], int(n)+1)[:n]
		utils.FillLetters(line, src)
		line = append(line, '\n')

		if _, err := out.Write(line); err != nil {
			return sum, fmt.Errorf("write line %d: %w", sum.Lines+1, err)
		}
		sum.Lines++
		sum.Letters += n
		g.progress.Add(n)
	}
	return sum, nil
}

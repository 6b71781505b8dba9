package application

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hailam/linegen/internal/config"
	"github.com/hailam/linegen/internal/logger"
	"github.com/hailam/linegen/internal/ports"
)

// CorpusService runs a generator against a buffered output stream using
// the budget and seed from its Config.
type CorpusService struct {
	cfg       config.Config
	generator ports.CorpusGenerator
	log       *slog.Logger
}

// NewCorpusService constructs a CorpusService. A nil logger discards records.
func NewCorpusService(cfg config.Config, generator ports.CorpusGenerator, log *slog.Logger) *CorpusService {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CorpusService{
		cfg:       cfg,
		generator: generator,
		log:       log.With(logger.Component("corpus")),
	}
}

// Run writes the whole corpus to out and flushes it.
func (s *CorpusService) Run(out io.Writer) (ports.Summary, error) {
	// 1. Reject bad parameters before any output
	if err := s.cfg.Validate(); err != nil {
		return ports.Summary{}, err
	}

	// 2. Generate into a buffer
	start := time.Now()
	w := bufio.NewWriterSize(out, s.cfg.BufferSize)
	summary, err := s.generator.Generate(w, s.cfg.MaxTotalLength, s.cfg.Seed)
	if err != nil {
		return summary, fmt.Errorf("failed to generate corpus: %w", err)
	}

	// 3. Flush whatever the buffer still holds
	if err := w.Flush(); err != nil {
		return summary, fmt.Errorf("failed to flush output: %w", err)
	}

	s.log.Info("corpus generated",
		slog.Int64("lines", summary.Lines),
		slog.Int64("letters", summary.Letters),
		slog.Int64("bytes", summary.Bytes()),
		slog.Uint64("seed", s.cfg.Seed),
		slog.Duration("duration", time.Since(start)),
	)
	return summary, nil
}

package ports

import "io"

// Summary describes what a generator run emitted.
type Summary struct {
	Lines   int64
	Letters int64 // newlines excluded
}

// Bytes is the number of bytes written, newlines included.
func (s Summary) Bytes() int64 {
	return s.Letters + s.Lines
}

// CorpusGenerator is the port for anything that can produce a corpus.
type CorpusGenerator interface {
	// Generate writes lines to out until maxTotalLength letters have been emitted.
	Generate(out io.Writer, maxTotalLength int64, seed uint64) (Summary, error)
}

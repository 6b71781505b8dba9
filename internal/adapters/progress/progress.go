package progress

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Noop discards progress.
type Noop struct{}

func (Noop) Add(int64)     {}
func (Noop) Finish() error { return nil }

// Bar renders a letter-budget progress bar to a terminal.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar returns a Bar sized for total letters, drawing to w.
func NewBar(total int64, w io.Writer) *Bar {
	return &Bar{
		bar: progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Add advances the bar by n letters. The final line can overshoot the
// total, which the bar reports as an error; that is ignored.
func (b *Bar) Add(n int64) {
	_ = b.bar.Add64(n)
}

func (b *Bar) Finish() error {
	return b.bar.Finish()
}

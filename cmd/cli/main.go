package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hailam/linegen/internal/adapters/factory"
	"github.com/hailam/linegen/internal/adapters/geometric"
	"github.com/hailam/linegen/internal/adapters/letters"
	"github.com/hailam/linegen/internal/adapters/progress"
	"github.com/hailam/linegen/internal/application"
	"github.com/hailam/linegen/internal/config"
	"github.com/hailam/linegen/internal/logger"
	"github.com/hailam/linegen/internal/ports"
)

func main() {
	log := logger.New(logger.WithOutput(os.Stderr))
	rootCmd := newRootCmd(config.Default(), os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		log.Error("corpus generation failed", logger.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "linegen",
		Short: "Writes a deterministic corpus of random lowercase lines to stdout.",
		Long: `linegen writes newline-separated lines of random lowercase letters to
stdout until a fixed letter budget is spent. Line lengths follow a
geometric distribution and every line has at least two letters. The seed
is fixed, so every run produces the same bytes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// --- Composition Root ---
			if err := cfg.Validate(); err != nil {
				return err
			}
			sampler, err := geometric.New(cfg.Probability)
			if err != nil {
				return err
			}
			reporter := newReporter(cfg, stderr)
			generator := letters.New(
				factory.NewStaticSourceFactory(),
				sampler,
				letters.WithEngine(ports.Engine(cfg.Engine)),
				letters.WithMinLineLength(cfg.MinLineLength),
				letters.WithProgress(reporter),
			)
			log := logger.New(logger.WithOutput(stderr))
			service := application.NewCorpusService(cfg, generator, log)
			// --- End Composition Root ---

			_, err = service.Run(stdout)
			if ferr := reporter.Finish(); err == nil {
				err = ferr
			}
			return err
		},
	}
}

// newReporter draws a progress bar only when stderr is a terminal.
func newReporter(cfg config.Config, stderr io.Writer) ports.ProgressReporter {
	f, ok := stderr.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return progress.Noop{}
	}
	return progress.NewBar(cfg.MaxTotalLength, f)
}

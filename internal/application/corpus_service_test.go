package application

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hailam/linegen/internal/config"
	"github.com/hailam/linegen/internal/logger"
	"github.com/hailam/linegen/internal/ports"
)

// --- Mock Implementations ---

// MockCorpusGenerator is a mock for ports.CorpusGenerator
type MockCorpusGenerator struct {
	GenerateFunc   func(out io.Writer, maxTotalLength int64, seed uint64) (ports.Summary, error)
	GenerateCalled bool
	CalledWithMax  int64
	CalledWithSeed uint64
}

func (m *MockCorpusGenerator) Generate(out io.Writer, maxTotalLength int64, seed uint64) (ports.Summary, error) {
	m.GenerateCalled = true
	m.CalledWithMax = maxTotalLength
	m.CalledWithSeed = seed
	if m.GenerateFunc != nil {
		return m.GenerateFunc(out, maxTotalLength, seed)
	}
	// Default behavior: one short line
	_, err := io.WriteString(out, "ab\n")
	return ports.Summary{Lines: 1, Letters: 2}, err
}

// errWriter fails every write.
type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

// --- Test Cases ---

func TestCorpusService_Run(t *testing.T) {
	smallConfig := func() config.Config {
		cfg := config.Default()
		cfg.MaxTotalLength = 10
		cfg.Seed = 7
		return cfg
	}

	tests := []struct {
		name           string
		cfg            config.Config
		out            func() io.Writer
		setupGenerator func(*MockCorpusGenerator)
		expectedErrMsg string // Substring of expected error message, empty for success
		validateMock   func(*testing.T, *MockCorpusGenerator)
	}{
		{
			name:           "Success",
			cfg:            smallConfig(),
			expectedErrMsg: "",
			validateMock: func(t *testing.T, mg *MockCorpusGenerator) {
				if !mg.GenerateCalled {
					t.Errorf("Expected Generate to be called, but it wasn't")
				}
				if mg.CalledWithMax != 10 {
					t.Errorf("Generate called with max %d, want 10", mg.CalledWithMax)
				}
				if mg.CalledWithSeed != 7 {
					t.Errorf("Generate called with seed %d, want 7", mg.CalledWithSeed)
				}
			},
		},
		{
			name: "Error Invalid Config",
			cfg: func() config.Config {
				cfg := smallConfig()
				cfg.Probability = 2
				return cfg
			}(),
			expectedErrMsg: "invalid config",
			validateMock: func(t *testing.T, mg *MockCorpusGenerator) {
				if mg.GenerateCalled {
					t.Errorf("Expected Generate NOT to be called on invalid config")
				}
			},
		},
		{
			name: "Error During Generation",
			cfg:  smallConfig(),
			setupGenerator: func(mg *MockCorpusGenerator) {
				mg.GenerateFunc = func(io.Writer, int64, uint64) (ports.Summary, error) {
					return ports.Summary{}, errors.New("mock generation error")
				}
			},
			expectedErrMsg: "failed to generate corpus: mock generation error",
		},
		{
			name:           "Error During Flush",
			cfg:            smallConfig(),
			out:            func() io.Writer { return errWriter{err: errors.New("closed pipe")} },
			expectedErrMsg: "failed to flush output: closed pipe",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockGenerator := &MockCorpusGenerator{}
			if tc.setupGenerator != nil {
				tc.setupGenerator(mockGenerator)
			}

			var out io.Writer = &bytes.Buffer{}
			if tc.out != nil {
				out = tc.out()
			}

			service := NewCorpusService(tc.cfg, mockGenerator, nil)
			_, err := service.Run(out)

			if tc.expectedErrMsg == "" {
				if err != nil {
					t.Errorf("Run() unexpected error = %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Run() expected an error containing %q, but got nil", tc.expectedErrMsg)
				} else if !strings.Contains(err.Error(), tc.expectedErrMsg) {
					t.Errorf("Run() error = %q, expected error containing %q", err.Error(), tc.expectedErrMsg)
				}
			}

			if tc.validateMock != nil {
				tc.validateMock(t, mockGenerator)
			}
		})
	}
}

func TestCorpusService_FlushesAndLogs(t *testing.T) {
	cfg := config.Default()
	cfg.MaxTotalLength = 2

	var out, logs bytes.Buffer
	service := NewCorpusService(cfg, &MockCorpusGenerator{}, logger.New(logger.WithOutput(&logs)))

	summary, err := service.Run(&out)
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if got := out.String(); got != "ab\n" {
		t.Errorf("output = %q, want %q", got, "ab\n")
	}
	if summary.Bytes() != 3 {
		t.Errorf("summary.Bytes() = %d, want 3", summary.Bytes())
	}
	for _, want := range []string{"corpus generated", "component=corpus", "lines=1", "letters=2", "bytes=3"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log output %q missing %q", logs.String(), want)
		}
	}
}

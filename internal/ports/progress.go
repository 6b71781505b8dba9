package ports

// ProgressReporter receives the number of letters emitted as a run advances.
type ProgressReporter interface {
	Add(n int64)
	Finish() error
}

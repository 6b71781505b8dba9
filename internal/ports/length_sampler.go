package ports

// LengthSampler draws a candidate line length from src.
type LengthSampler interface {
	Sample(src RandomSource) int64
}

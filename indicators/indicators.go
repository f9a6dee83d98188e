// Package indicators provides streaming and batch technical-analysis
// statistics over price series.
//
// Batch transforms are pure functions over a full series. Streaming
// calculators carry minimal per-stream state; one instance belongs to one
// logical price stream and must not be shared across goroutines without
// external synchronization.
package indicators

import "errors"

var (
	// ErrInvalidParameter reports a non-positive period or similar
	// out-of-domain configuration.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData reports a batch input shorter than the period.
	ErrInsufficientData = errors.New("insufficient data")
)

// Indicator computes a single streaming value from a price feed.
// Deterministic: the same update sequence always yields the same state.
type Indicator interface {
	// Name returns a stable identifier like "EMA(20)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears computed state; configuration (period etc.) survives.
	Reset()

	// Update consumes the next price and returns the new indicator value.
	Update(price float64) float64

	// Ready reports whether the indicator has a meaningful value.
	Ready() bool
}

// Value is one slot of a batch indicator series. Valid is false for entries
// inside the warm-up window; callers must check it rather than rely on a
// numeric sentinel.
type Value struct {
	Float64 float64
	Valid   bool
}

package indicators

import "fmt"

// EMASeries computes a period-N Exponential Moving Average over a full price
// series. The output has the same length and order as the input: the first
// N-1 entries are invalid (warm-up), entry N-1 is the simple average of the
// first N prices, and every later entry follows the recurrence
//
//	ema[i] = alpha*price[i] + (1-alpha)*ema[i-1],  alpha = 2/(N+1)
//
// Seeding with the SMA of the first N prices avoids the biased warm-up of
// starting the recurrence at the first price. This is deliberately different
// from the streaming calculator, which has no lookback window and seeds on
// its first observation; see EMA.
func EMASeries(prices []float64, period int) ([]Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidParameter, period)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: price series is empty", ErrInsufficientData)
	}
	if len(prices) < period {
		return nil, fmt.Errorf("%w: need at least %d prices, got %d", ErrInsufficientData, period, len(prices))
	}

	alpha := 2.0 / float64(period+1)
	out := make([]Value, len(prices))

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	ema := sum / float64(period)
	out[period-1] = Value{Float64: ema, Valid: true}

	for i := period; i < len(prices); i++ {
		ema = alpha*prices[i] + (1.0-alpha)*ema
		out[i] = Value{Float64: ema, Valid: true}
	}

	return out, nil
}

// EMA is a streaming Exponential Moving Average calculator. It holds the
// minimal state needed to fold one price at a time: the period, the derived
// smoothing factor and the current value.
//
// The first Update after construction or Reset seeds the value with that
// price itself. A live feed has no fixed lookback window to average over, so
// the streaming calculator diverges from EMASeries for early indices and
// converges to it as updates accumulate.
type EMA struct {
	period int
	alpha  float64
	value  float64
	seeded bool
	name   string
}

// NewEMA creates a streaming EMA calculator for the given period.
func NewEMA(period int) (*EMA, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidParameter, period)
	}
	return &EMA{
		period: period,
		alpha:  2.0 / float64(period+1),
		name:   fmt.Sprintf("EMA(%d)", period),
	}, nil
}

// Name returns a stable identifier like "EMA(20)".
func (e *EMA) Name() string { return e.name }

// Warmup returns 1: the calculator has a value after its first update.
func (e *EMA) Warmup() int { return 1 }

// Ready reports whether at least one price has been observed.
func (e *EMA) Ready() bool { return e.seeded }

// Period returns the configured period.
func (e *EMA) Period() int { return e.period }

// Alpha returns the smoothing factor 2/(period+1).
func (e *EMA) Alpha() float64 { return e.alpha }

// Value returns the current EMA and whether one exists yet.
func (e *EMA) Value() (float64, bool) {
	return e.value, e.seeded
}

// Update folds the next price into the average and returns the new value.
func (e *EMA) Update(price float64) float64 {
	if !e.seeded {
		e.value = price
		e.seeded = true
		return e.value
	}
	e.value = e.alpha*price + (1.0-e.alpha)*e.value
	return e.value
}

// Reset clears the current value; period and alpha are unchanged. The next
// Update seeds exactly as on a fresh calculator.
func (e *EMA) Reset() {
	e.value = 0
	e.seeded = false
}

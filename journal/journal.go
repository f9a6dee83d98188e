// Package journal records computation results (option pricings and
// indicator runs) to CSV files or a SQLite database.
package journal

import (
	"time"

	"github.com/finquant/finquant/pricing"
)

// PricingRecord is one priced contract: the inputs alongside the full
// result, keyed by a ULID so rows sort by creation time.
type PricingRecord struct {
	RecordID      string
	RunID         string
	OptionType    string
	Spot          float64
	Strike        float64
	Expiry        float64
	Rate          float64
	Volatility    float64
	DividendYield float64
	Price         float64
	Delta         float64
	Gamma         float64
	Theta         float64
	Vega          float64
	Rho           float64
	Time          time.Time
}

// NewPricingRecord assembles a record from the engine's inputs and output.
func NewPricingRecord(recordID, runID string, params pricing.OptionParams, typ pricing.OptionType, res pricing.PricingResult, at time.Time) PricingRecord {
	return PricingRecord{
		RecordID:      recordID,
		RunID:         runID,
		OptionType:    typ.String(),
		Spot:          params.Spot,
		Strike:        params.Strike,
		Expiry:        params.TimeToExpiry,
		Rate:          params.RiskFreeRate,
		Volatility:    params.Volatility,
		DividendYield: params.DividendYield,
		Price:         res.Price,
		Delta:         res.Delta,
		Gamma:         res.Gamma,
		Theta:         res.Theta,
		Vega:          res.Vega,
		Rho:           res.Rho,
		Time:          at,
	}
}

// IndicatorRecord summarizes one indicator pass over a price series.
type IndicatorRecord struct {
	RecordID string
	RunID    string
	Name     string // e.g. "EMA(10)"
	Period   int
	Samples  int     // number of input prices
	Final    float64 // last computed value
	Time     time.Time
}

// Journal persists computation results.
type Journal interface {
	RecordPricing(PricingRecord) error
	RecordIndicator(IndicatorRecord) error
	Close() error
}

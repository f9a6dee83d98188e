// Package pricing implements closed-form European option pricing under the
// Black-Scholes-Merton model with continuous dividend yield.
//
// The package is a pure computation core: every function is deterministic,
// allocates only its result, and is safe for unrestricted concurrent use.
// Validation is re-checked here even though callers (CLI, config loader)
// validate first, so the package remains safe to call directly.
package pricing

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pricing and indicator layers. Wrapped errors carry
// the offending parameter and value; check with errors.Is.
var (
	// ErrInvalidParameter reports a contract parameter outside its domain
	// (non-positive spot/strike, negative expiry or volatility).
	ErrInvalidParameter = errors.New("invalid parameter")
)

// OptionType selects between the two exercise styles of a vanilla option.
type OptionType int

const (
	Call OptionType = iota
	Put
)

// String returns "call" or "put".
func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// ParseOptionType maps "call"/"put" to an OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch s {
	case "call", "CALL", "Call", "c", "C":
		return Call, nil
	case "put", "PUT", "Put", "p", "P":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: option type must be call or put, got %q", ErrInvalidParameter, s)
}

// OptionParams describes the contract being priced. All rates and the
// volatility are annualized; TimeToExpiry is in years.
type OptionParams struct {
	Spot          float64 // current price of the underlying, must be > 0
	Strike        float64 // strike price, must be > 0
	TimeToExpiry  float64 // years until expiry, must be >= 0
	RiskFreeRate  float64 // continuously compounded, any sign
	Volatility    float64 // must be >= 0
	DividendYield float64 // continuous yield, zero for non-dividend assets
}

// Validate checks the parameter domain. It returns an error wrapping
// ErrInvalidParameter naming the violated constraint, or nil.
func (p OptionParams) Validate() error {
	if p.Spot <= 0 {
		return fmt.Errorf("%w: spot price must be positive, got %g", ErrInvalidParameter, p.Spot)
	}
	if p.Strike <= 0 {
		return fmt.Errorf("%w: strike price must be positive, got %g", ErrInvalidParameter, p.Strike)
	}
	if p.TimeToExpiry < 0 {
		return fmt.Errorf("%w: time to expiry cannot be negative, got %g", ErrInvalidParameter, p.TimeToExpiry)
	}
	if p.Volatility < 0 {
		return fmt.Errorf("%w: volatility cannot be negative, got %g", ErrInvalidParameter, p.Volatility)
	}
	return nil
}

// PricingResult holds the fair value and sensitivities of one contract.
//
// Conventions: Vega and Rho are reported per 1% move (the raw partial
// derivative divided by 100); Theta is per year. Delta and Gamma are
// unscaled. All fields are finite for valid inputs, including the T=0 and
// sigma=0 degeneracies.
type PricingResult struct {
	Price float64
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

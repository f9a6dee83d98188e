package pricing

import (
	"fmt"
	"math"
)

const (
	ivInitialGuess  = 0.3
	ivTolerance     = 1e-6
	ivMaxIterations = 100
	ivFloor         = 1e-4
)

// ImpliedVolatility inverts the model: it finds the volatility at which the
// contract's Black-Scholes value equals marketPrice, by Newton-Raphson on
// vega. The Volatility field of params is ignored.
//
// Convergence is not guaranteed for prices outside the no-arbitrage band
// (below intrinsic, above the spot leg); those fail with ErrInvalidParameter
// or a non-convergence error rather than returning a junk volatility.
func ImpliedVolatility(params OptionParams, optionType OptionType, marketPrice float64) (float64, error) {
	if marketPrice <= 0 {
		return 0, fmt.Errorf("%w: market price must be positive, got %g", ErrInvalidParameter, marketPrice)
	}
	params.Volatility = ivInitialGuess
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if params.TimeToExpiry == 0 {
		return 0, fmt.Errorf("%w: implied volatility undefined at expiry", ErrInvalidParameter)
	}

	sigma := ivInitialGuess
	for i := 0; i < ivMaxIterations; i++ {
		params.Volatility = sigma
		res, err := Price(params, optionType)
		if err != nil {
			return 0, err
		}

		diff := res.Price - marketPrice
		if math.Abs(diff) < ivTolerance {
			return sigma, nil
		}

		// Vega is reported per 1%; Newton needs the raw derivative.
		vega := res.Vega * 100.0
		if vega == 0 {
			break
		}

		sigma -= diff / vega
		if sigma < ivFloor {
			sigma = ivFloor
		}
	}

	return 0, fmt.Errorf("implied volatility did not converge for market price %g", marketPrice)
}

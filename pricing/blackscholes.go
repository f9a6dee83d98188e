package pricing

import "math"

// Price computes the fair value and Greeks of a European option under
// Black-Scholes-Merton. Parameters are validated first; on violation the
// call fails with ErrInvalidParameter and no partial result.
//
// Two degeneracies are resolved explicitly instead of being left to
// floating-point accident:
//
//   - TimeToExpiry == 0: the price is the intrinsic value, delta is the
//     moneyness indicator (+1 / -1 in the money, 0 otherwise) and the
//     remaining Greeks are 0.
//   - Volatility == 0: the underlying drifts deterministically to its
//     forward, so the price is the discounted forward payoff, delta is a
//     step function at the forward and gamma/vega are 0. Theta and rho take
//     their limiting values from the general formulas.
func Price(params OptionParams, optionType OptionType) (PricingResult, error) {
	if err := params.Validate(); err != nil {
		return PricingResult{}, err
	}

	if params.TimeToExpiry == 0 {
		return priceAtExpiry(params, optionType), nil
	}
	if params.Volatility == 0 {
		return priceDeterministic(params, optionType), nil
	}

	S, K := params.Spot, params.Strike
	T := params.TimeToExpiry
	r, q := params.RiskFreeRate, params.DividendYield
	sigma := params.Volatility

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	disc := math.Exp(-r * T)    // discount on the strike leg
	divDisc := math.Exp(-q * T) // dividend discount on the spot leg
	pdfD1 := normPDF(d1)

	res := PricingResult{
		Gamma: divDisc * pdfD1 / (S * sigma * sqrtT),
		Vega:  S * divDisc * pdfD1 * sqrtT / 100.0,
	}

	switch optionType {
	case Call:
		nd1 := normCDF(d1)
		nd2 := normCDF(d2)
		res.Price = S*divDisc*nd1 - K*disc*nd2
		res.Delta = divDisc * nd1
		res.Theta = -S*divDisc*pdfD1*sigma/(2.0*sqrtT) - r*K*disc*nd2 + q*S*divDisc*nd1
		res.Rho = K * T * disc * nd2 / 100.0
	case Put:
		nNegD1 := normCDF(-d1)
		nNegD2 := normCDF(-d2)
		res.Price = K*disc*nNegD2 - S*divDisc*nNegD1
		res.Delta = -divDisc * nNegD1
		res.Theta = -S*divDisc*pdfD1*sigma/(2.0*sqrtT) + r*K*disc*nNegD2 - q*S*divDisc*nNegD1
		res.Rho = -K * T * disc * nNegD2 / 100.0
	}

	return res, nil
}

// PriceCall prices a call option.
func PriceCall(params OptionParams) (PricingResult, error) {
	return Price(params, Call)
}

// PricePut prices a put option.
func PricePut(params OptionParams) (PricingResult, error) {
	return Price(params, Put)
}

// priceAtExpiry collapses the model to intrinsic value when no time remains.
func priceAtExpiry(params OptionParams, optionType OptionType) PricingResult {
	var intrinsic, delta float64
	switch optionType {
	case Call:
		intrinsic = math.Max(params.Spot-params.Strike, 0)
		if intrinsic > 0 {
			delta = 1.0
		}
	case Put:
		intrinsic = math.Max(params.Strike-params.Spot, 0)
		if intrinsic > 0 {
			delta = -1.0
		}
	}
	return PricingResult{Price: intrinsic, Delta: delta}
}

// priceDeterministic handles sigma == 0 with T > 0: the payoff is fixed by
// the forward, so price and Greeks are the sigma -> 0 limits of the general
// formulas (the normal CDF terms become moneyness indicators, the density
// terms vanish).
func priceDeterministic(params OptionParams, optionType OptionType) PricingResult {
	S, K := params.Spot, params.Strike
	T := params.TimeToExpiry
	r, q := params.RiskFreeRate, params.DividendYield

	disc := math.Exp(-r * T)
	divDisc := math.Exp(-q * T)
	forward := S * math.Exp((r-q)*T)

	var res PricingResult
	switch optionType {
	case Call:
		if forward > K {
			res.Price = S*divDisc - K*disc
			res.Delta = divDisc
			res.Theta = q*S*divDisc - r*K*disc
			res.Rho = K * T * disc / 100.0
		}
	case Put:
		if forward < K {
			res.Price = K*disc - S*divDisc
			res.Delta = -divDisc
			res.Theta = r*K*disc - q*S*divDisc
			res.Rho = -K * T * disc / 100.0
		}
	}
	return res
}

package pricing

import "math"

// normCDF is the standard normal cumulative distribution function, built on
// math.Erf. Absolute error is below 1e-7 across the real line, which is well
// inside the tolerance the Greeks need.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2.0*math.Pi)
}

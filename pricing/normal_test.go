package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormCDF(t *testing.T) {
	assert.InDelta(t, 0.5, normCDF(0), 1e-12)
	assert.InDelta(t, 0.975002, normCDF(1.959964), 1e-6)
	assert.InDelta(t, 0.841345, normCDF(1), 1e-6)

	// Symmetry and tails.
	for _, x := range []float64{0.1, 0.5, 1, 2, 5} {
		assert.InDelta(t, 1.0, normCDF(x)+normCDF(-x), 1e-12)
	}
	assert.InDelta(t, 0.0, normCDF(-10), 1e-12)
	assert.InDelta(t, 1.0, normCDF(10), 1e-12)
}

func TestNormPDF(t *testing.T) {
	assert.InDelta(t, 1.0/math.Sqrt(2*math.Pi), normPDF(0), 1e-12)
	assert.Equal(t, normPDF(1.3), normPDF(-1.3))
}

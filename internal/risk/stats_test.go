package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormCDF_KnownValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1, 0.8413447460685429},
		{1.96, 0.9750021048517795},
		{-2, 0.022750131948179195},
		{3, 0.9986501019683699},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormCDF(tt.x), 1e-12, "Φ(%v)", tt.x)
	}
}

func TestNormCDF_Tails(t *testing.T) {
	assert.Equal(t, 0.0, NormCDF(-12))
	assert.Equal(t, 1.0, NormCDF(12))
	assert.Equal(t, 0.0, NormCDF(math.Inf(-1)))
	assert.Equal(t, 1.0, NormCDF(math.Inf(1)))
	assert.True(t, math.IsNaN(NormCDF(math.NaN())))

	// symmetry
	for _, x := range []float64{0.3, 1.1, 2.5, 4.2} {
		assert.InDelta(t, 1.0, NormCDF(x)+NormCDF(-x), 1e-14)
	}
}

func TestMeanStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, Mean(values), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdDev(values), 1e-12)
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, StdDev([]float64{1}))
}

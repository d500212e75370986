package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuartiles(t *testing.T) {
	q := ComputeQuartiles([]float64{1, 2, 3, 4, 5})

	assert.Equal(t, 2.0, q.Q1.Float64)
	assert.Equal(t, 3.0, q.Q2.Float64)
	assert.Equal(t, 4.0, q.Q3.Float64)
	assert.Equal(t, -1.0, q.LowerFence.Float64)
	assert.Equal(t, 7.0, q.UpperFence.Float64)
}

func TestComputeQuartiles_Empty(t *testing.T) {
	q := ComputeQuartiles(nil)
	assert.False(t, q.Q1.Valid)
	assert.False(t, q.Q2.Valid)
	assert.False(t, q.Q3.Valid)
}

func TestComputeQuartiles_SingleValue(t *testing.T) {
	q := ComputeQuartiles([]float64{7})
	assert.Equal(t, 7.0, q.Q1.Float64)
	assert.Equal(t, 7.0, q.Q2.Float64)
	assert.Equal(t, 7.0, q.Q3.Float64)
}

func TestComputeQuartiles_MedianMatchesDescribe(t *testing.T) {
	values := []float64{4040.89, 4552.91, 4955.54, 5337.46, 11160.04, 9020.12}
	assert.InDelta(t, Describe(values).Median.Float64, ComputeQuartiles(values).Q2.Float64, 1e-9)
}

func TestHistogramBins(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	bins := HistogramBins(values, 5)

	require.Len(t, bins, 5)
	total := 0
	for _, b := range bins {
		total += b.Count
		assert.Less(t, b.Low, b.High)
	}
	assert.Equal(t, len(values), total)
	// The maximum lands in the last bucket, not past it.
	assert.Equal(t, 2, bins[4].Count)
	assert.Equal(t, 9.0, bins[4].High)
}

func TestHistogramBins_Degenerate(t *testing.T) {
	bins := HistogramBins([]float64{5, 5, 5}, 15)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
}

func TestHistogramBins_Empty(t *testing.T) {
	assert.Nil(t, HistogramBins(nil, 15))
	assert.Nil(t, HistogramBins([]float64{1}, 0))
}

func TestGaussianKDE(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	kde := GaussianKDE(values)
	require.NotNil(t, kde)

	// Density is positive, peaks near the data, and decays away from it.
	assert.Greater(t, kde(5.5), 0.0)
	assert.Greater(t, kde(5.5), kde(50))

	// Density integrates to roughly one over a generous interval.
	integral := 0.0
	step := 0.01
	for x := -20.0; x < 30.0; x += step {
		integral += kde(x) * step
	}
	assert.InDelta(t, 1.0, integral, 0.02)
}

func TestGaussianKDE_Degenerate(t *testing.T) {
	assert.Nil(t, GaussianKDE(nil))
	assert.Nil(t, GaussianKDE([]float64{3}))
	assert.Nil(t, GaussianKDE([]float64{3, 3, 3}))
}

func TestQuantile_Interpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	assert.InDelta(t, 17.5, quantile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 25.0, quantile(sorted, 0.5), 1e-12)
	assert.Equal(t, 40.0, quantile(sorted, 1.0))
	assert.False(t, math.IsNaN(quantile(sorted, 0)))
}

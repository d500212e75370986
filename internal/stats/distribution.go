package stats

import (
	"math"
	"sort"

	"gdplens/internal/dataset"
)

// Quartiles holds the boxplot shaping data for a numeric column:
// quartiles plus the conventional 1.5xIQR outlier fences.
type Quartiles struct {
	Q1         dataset.Float `json:"q1"`
	Q2         dataset.Float `json:"q2"`
	Q3         dataset.Float `json:"q3"`
	LowerFence dataset.Float `json:"lower_fence"`
	UpperFence dataset.Float `json:"upper_fence"`
}

// ComputeQuartiles returns the quartiles of values using linear
// interpolation between closest ranks. Empty input yields all
// missing-markers.
func ComputeQuartiles(values []float64) Quartiles {
	if len(values) == 0 {
		return Quartiles{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q2 := quantile(sorted, 0.50)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1

	return Quartiles{
		Q1:         dataset.FloatFrom(q1),
		Q2:         dataset.FloatFrom(q2),
		Q3:         dataset.FloatFrom(q3),
		LowerFence: dataset.FloatFrom(q1 - 1.5*iqr),
		UpperFence: dataset.FloatFrom(q3 + 1.5*iqr),
	}
}

// quantile interpolates linearly between closest ranks on a sorted
// slice.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Bin is one equal-width histogram bucket. High is exclusive except for
// the last bucket, which includes the maximum.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// HistogramBins buckets values into n equal-width bins. A degenerate
// all-equal input collapses to a single bucket holding everything.
func HistogramBins(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	minV, maxV := minMax(values)
	if minV == maxV {
		return []Bin{{Low: minV, High: maxV, Count: len(values)}}
	}

	width := (maxV - minV) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Low = minV + float64(i)*width
		bins[i].High = minV + float64(i+1)*width
	}
	bins[n-1].High = maxV

	for _, v := range values {
		idx := int((v - minV) / width)
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Count++
	}
	return bins
}

// GaussianKDE returns a Gaussian kernel density estimate over values
// with Silverman's rule-of-thumb bandwidth. The returned function is
// the density overlay for the histogram chart. Returns nil for inputs
// too small or too flat to estimate.
func GaussianKDE(values []float64) func(x float64) float64 {
	n := len(values)
	if n < 2 {
		return nil
	}
	sigma := math.Sqrt(variance(values))
	if sigma == 0 {
		return nil
	}

	h := 1.06 * sigma * math.Pow(float64(n), -0.2)
	norm := 1 / (float64(n) * h * math.Sqrt(2*math.Pi))

	sample := make([]float64, n)
	copy(sample, values)

	return func(x float64) float64 {
		sum := 0.0
		for _, v := range sample {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		return norm * sum
	}
}

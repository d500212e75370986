package stats

import (
	"math"
	"sort"

	"gdplens/internal/dataset"
)

// Summary holds the seven descriptive statistics over a numeric
// column. Statistics that are undefined for the input (empty column,
// single value for the N-1 variance, zero mean for the coefficient of
// variation) are missing-markers rather than NaN.
type Summary struct {
	Count         int           `json:"count"`
	Mean          dataset.Float `json:"mean"`
	Median        dataset.Float `json:"median"`
	Mode          dataset.Float `json:"mode"`
	Range         dataset.Float `json:"range"`
	Variance      dataset.Float `json:"variance"`
	StdDev        dataset.Float `json:"std_dev"`
	CoefVariation dataset.Float `json:"coef_variation"`
}

// Describe computes the seven descriptive statistics over values.
// Callers pass the null-excluded column (dataset.Series.ValidGDP).
func Describe(values []float64) Summary {
	n := len(values)
	summary := Summary{Count: n}
	if n == 0 {
		return summary
	}

	summary.Mean = dataset.FloatFrom(mean(values))
	summary.Median = dataset.FloatFrom(median(values))
	summary.Mode = dataset.FloatFrom(mode(values))

	minV, maxV := minMax(values)
	summary.Range = dataset.FloatFrom(maxV - minV)

	if n >= 2 {
		v := variance(values)
		summary.Variance = dataset.FloatFrom(v)
		summary.StdDev = dataset.FloatFrom(math.Sqrt(v))
		if summary.Mean.Float64 != 0 {
			summary.CoefVariation = dataset.FloatFrom(
				summary.StdDev.Float64 / summary.Mean.Float64 * 100)
		}
	}

	return summary
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median is the middle value of the sorted sequence, averaging the two
// middles for an even count.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// mode is the most frequent value; ties resolve to the smallest tied
// value.
func mode(values []float64) float64 {
	freq := make(map[float64]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	best := values[0]
	bestCount := 0
	for v, count := range freq {
		if count > bestCount || (count == bestCount && v < best) {
			best = v
			bestCount = count
		}
	}
	return best
}

func minMax(values []float64) (float64, float64) {
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}

// variance is the sample variance (N-1 denominator). Caller guarantees
// len(values) >= 2.
func variance(values []float64) float64 {
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return sumSq / float64(len(values)-1)
}

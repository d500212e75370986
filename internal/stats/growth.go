package stats

import (
	"gdplens/internal/dataset"
)

// Growth fills in the GrowthPct column of the working table in place:
// the percentage change of GDP from each row to its positional
// predecessor. The first row has no predecessor and stays missing.
// A missing GDP on either side, or a predecessor of exactly zero,
// yields a missing growth value, never an infinity; later argmax and
// argmin lookups must not see non-finite values.
func Growth(s *dataset.Series) {
	for i := range s.Observations {
		s.Observations[i].GrowthPct = dataset.InvalidFloat()
		if i == 0 {
			continue
		}

		curr := s.Observations[i].GDP
		prev := s.Observations[i-1].GDP
		if !curr.Valid || !prev.Valid || prev.Float64 == 0 {
			continue
		}

		s.Observations[i].GrowthPct = dataset.FloatFrom(
			(curr.Float64 - prev.Float64) / prev.Float64 * 100)
	}
}

// ArgMaxGrowth returns the index of the first observation holding the
// maximum valid growth value. ok is false when the growth column is
// entirely missing.
func ArgMaxGrowth(s *dataset.Series) (int, bool) {
	return argGrowth(s, func(candidate, best float64) bool {
		return candidate > best
	})
}

// ArgMinGrowth returns the index of the first observation holding the
// minimum valid growth value. ok is false when the growth column is
// entirely missing.
func ArgMinGrowth(s *dataset.Series) (int, bool) {
	return argGrowth(s, func(candidate, best float64) bool {
		return candidate < best
	})
}

// argGrowth scans in row order; a strict comparison keeps the first
// occurrence on ties.
func argGrowth(s *dataset.Series, better func(candidate, best float64) bool) (int, bool) {
	bestIdx := -1
	best := 0.0
	for i, obs := range s.Observations {
		if !obs.GrowthPct.Valid {
			continue
		}
		if bestIdx == -1 || better(obs.GrowthPct.Float64, best) {
			bestIdx = i
			best = obs.GrowthPct.Float64
		}
	}
	return bestIdx, bestIdx != -1
}

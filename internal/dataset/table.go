package dataset

import (
	"time"
)

// Record is one raw row of the source dataset: a (country, year, value)
// triple with all fields kept as loaded. Records are immutable.
type Record struct {
	CountryName string
	Year        string
	Value       string
}

// Table is the ordered in-memory form of the source dataset. Row order
// is preserved from the source end-to-end; the growth computation is
// defined relative to the positional predecessor, not sorted year.
type Table struct {
	Records []Record
	// Country is set on tables produced by FilterCountry.
	Country string
	// Source describes where the table was loaded from (URL or path).
	Source   string
	LoadedAt time.Time
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// Head returns the first n rows, or all rows when the table is shorter.
func (t *Table) Head(n int) []Record {
	if n > len(t.Records) {
		n = len(t.Records)
	}
	return t.Records[:n]
}

// FilterCountry returns a new independent table containing only the
// rows whose country name matches exactly (case-sensitive, no
// trimming), preserving relative order. Zero matches yield an empty
// table, not an error; downstream stages handle emptiness explicitly.
func (t *Table) FilterCountry(name string) *Table {
	filtered := &Table{
		Country:  name,
		Source:   t.Source,
		LoadedAt: t.LoadedAt,
	}
	for _, rec := range t.Records {
		if rec.CountryName == name {
			filtered.Records = append(filtered.Records, rec)
		}
	}
	return filtered
}

// Observation is one working-table row for the selected country.
// GrowthPct is filled in by the growth calculator; it is always missing
// for the first row.
type Observation struct {
	Year      Float `json:"year"`
	GDP       Float `json:"gdp"`
	GrowthPct Float `json:"growth_pct"`
}

// Series is the filtered, normalized, order-preserved working table
// used by all downstream computations.
type Series struct {
	Country      string        `json:"country"`
	Observations []Observation `json:"observations"`
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Observations)
}

// ValidGDP returns the GDP values with missing-markers excluded, in
// row order.
func (s *Series) ValidGDP() []float64 {
	out := make([]float64, 0, len(s.Observations))
	for _, obs := range s.Observations {
		if obs.GDP.Valid {
			out = append(out, obs.GDP.Float64)
		}
	}
	return out
}

// HasGrowth reports whether at least one observation carries a valid
// growth value.
func (s *Series) HasGrowth() bool {
	for _, obs := range s.Observations {
		if obs.GrowthPct.Valid {
			return true
		}
	}
	return false
}

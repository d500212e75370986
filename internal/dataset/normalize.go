package dataset

import (
	"context"
	"log/slog"
)

// Normalize coerces the Year and Value fields of every row to numeric
// cells, producing the working table. Fields that fail coercion become
// missing-markers and are logged as warnings; they are never an error.
// Row order is preserved.
func Normalize(ctx context.Context, logger *slog.Logger, t *Table) *Series {
	if logger == nil {
		logger = slog.Default()
	}

	series := &Series{
		Country:      t.Country,
		Observations: make([]Observation, 0, t.Len()),
	}

	for i, rec := range t.Records {
		year := ParseFloat(rec.Year)
		if !year.Valid {
			logger.WarnContext(ctx, "year failed numeric coercion",
				slog.Int("row", i),
				slog.String("raw", rec.Year))
		}

		gdp := ParseFloat(rec.Value)
		if !gdp.Valid {
			logger.WarnContext(ctx, "gdp value failed numeric coercion",
				slog.Int("row", i),
				slog.String("raw", rec.Value))
		}

		series.Observations = append(series.Observations, Observation{
			Year: year,
			GDP:  gdp,
		})
	}

	return series
}

package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"gdplens/internal/dataset"
	apperrors "gdplens/internal/errors"
)

// StatisticsLines formats the seven descriptive statistics for console
// output, two decimals and thousands separators on the USD amounts.
func (r *Report) StatisticsLines() []string {
	return []string{
		fmt.Sprintf("Mean: %s USD", formatUSD(r.Summary.Mean)),
		fmt.Sprintf("Median: %s USD", formatUSD(r.Summary.Median)),
		fmt.Sprintf("Mode: %s USD", formatUSD(r.Summary.Mode)),
		fmt.Sprintf("Range: %s USD", formatUSD(r.Summary.Range)),
		fmt.Sprintf("Variance: %s", formatUSD(r.Summary.Variance)),
		fmt.Sprintf("Standard deviation: %s", formatUSD(r.Summary.StdDev)),
		fmt.Sprintf("Coefficient of variation: %s%%", formatPct(r.Summary.CoefVariation)),
	}
}

// Conclusions derives the fixed four-line automatic summary: the year
// and rate of the strongest growth, the year and rate of the sharpest
// decline, the mean GDP, and the standard deviation. When the growth
// column is entirely missing the lookup is undefined and an
// empty-result error wrapping errors.ErrNoGrowthData is returned
// instead.
func (r *Report) Conclusions() ([]string, error) {
	if !r.HasGrowth {
		return nil, apperrors.NewEmptyResultError(
			"growth column is entirely missing", apperrors.ErrNoGrowthData).
			WithContext("country", r.Country)
	}

	return []string{
		fmt.Sprintf("The strongest GDP growth occurred in %s with a rate of %.2f%%.",
			formatYear(r.MaxGrowth.Year), r.MaxGrowth.Pct),
		fmt.Sprintf("The sharpest GDP decline occurred in %s with a change of %.2f%%.",
			formatYear(r.MinGrowth.Year), r.MinGrowth.Pct),
		fmt.Sprintf("The average GDP over the analyzed period was %s USD.",
			formatUSD(r.Summary.Mean)),
		fmt.Sprintf("The standard deviation indicates a variability of %s USD across the analyzed years.",
			formatUSD(r.Summary.StdDev)),
	}, nil
}

// formatUSD renders a nullable amount with two decimals and thousands
// separators; missing values render as "undefined".
func formatUSD(v dataset.Float) string {
	if !v.Valid {
		return "undefined"
	}
	return addThousands(strconv.FormatFloat(v.Float64, 'f', 2, 64))
}

func formatPct(v dataset.Float) string {
	if !v.Valid {
		return "undefined"
	}
	return strconv.FormatFloat(v.Float64, 'f', 2, 64)
}

func formatYear(v dataset.Float) string {
	if !v.Valid {
		return "an unknown year"
	}
	return strconv.Itoa(int(v.Float64))
}

// addThousands inserts comma separators into the integer part of a
// plain decimal string.
func addThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if hasFrac {
		return sign + b.String() + "." + fracPart
	}
	return sign + b.String()
}

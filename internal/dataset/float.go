package dataset

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float is an explicit nullable numeric cell. It is the missing-marker
// of the pipeline: aggregate computations skip invalid cells instead of
// relying on NaN propagation, which keeps equality and ordering
// well-defined in tests.
type Float struct {
	Float64 float64
	Valid   bool
}

// FloatFrom returns a valid Float holding v.
func FloatFrom(v float64) Float {
	return Float{Float64: v, Valid: true}
}

// InvalidFloat returns the missing-marker.
func InvalidFloat() Float {
	return Float{}
}

// ParseFloat coerces a raw CSV field to a Float. The coercion is
// permissive: surrounding whitespace and thousands separators are
// tolerated, and anything that still fails to parse (including NaN and
// infinities) yields the missing-marker rather than an error.
func ParseFloat(raw string) Float {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return InvalidFloat()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidFloat()
	}
	return FloatFrom(v)
}

// Or returns the held value, or def when the cell is missing.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Float64
}

// MarshalJSON encodes a missing cell as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Float64)
}

// UnmarshalJSON decodes null as the missing-marker.
func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = InvalidFloat()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FloatFrom(v)
	return nil
}

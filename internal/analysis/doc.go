// Package analysis orchestrates the GDP descriptive analysis pipeline
// and derives the automatic textual conclusions.
//
// The Analyzer takes a loaded dataset table and a target country and
// returns a Report: the working series with its growth column, the
// seven descriptive statistics, the distribution shaping data for the
// charts, and the growth extremes. Everything downstream (console
// output, chart rendering, exports) consumes the Report.
package analysis

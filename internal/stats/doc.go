// Package stats implements the descriptive statistics of the GDP
// analysis: the seven-measure summary, quartile and histogram shaping
// for the distribution charts, a Gaussian density estimate, and the
// year-over-year growth column with its argmax/argmin lookups.
//
// All functions are pure; rerunning them on identical input produces
// bit-identical results.
package stats

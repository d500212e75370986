// Package chart renders the five views of a GDP analysis report as PNG
// files: the GDP line chart, the annual growth bar chart, the
// distribution histogram with density overlay, the boxplot, and the
// growth scatter with magnitude-mapped glyphs.
package chart

// Package exporter persists analysis reports to disk in CSV, JSON and
// XLSX form. The CSV writer emits the working table with a UTF-8 BOM
// for Excel compatibility; the XLSX writer adds native line and bar
// charts over the series.
package exporter

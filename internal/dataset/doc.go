// Package dataset loads the World Bank GDP dataset and derives the
// per-country working table.
//
// The stages mirror the pipeline front half: Loader fetches and parses
// the CSV resource, Table.FilterCountry selects the target country's
// rows, and Normalize coerces the text fields into nullable numeric
// cells. Source row order is preserved through every stage because the
// growth computation downstream is positional.
package dataset

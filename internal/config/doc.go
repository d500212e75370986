// Package config provides layered configuration for the GDP analysis
// pipeline: built-in defaults, an optional YAML file, and GDPLENS_*
// environment variables, in increasing order of precedence.
//
// The defaults reproduce the reference analysis (World Bank GDP
// dataset, Colombia, 15 histogram buckets) so the tool runs with no
// configuration at all.
package config

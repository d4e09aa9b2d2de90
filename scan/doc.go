// Package scan binds measurement kinds to their analyses.
//
// Each [Kind] is served by one [Analyzer] that knows the export [loader.Schema]
// of the kind and what to derive from its curve. Analyzers are collected in
// an explicit [Registry] built at startup; [DefaultRegistry] holds the
// osmoscan and oxygenscan analyzers.
package scan

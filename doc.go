// Package pairing finds the two non-negative numbers adding up to a given
// sum whose |a − b| × a × b is as large as possible, by numeric refinement
// rather than calculus.
//
// 🚀 What is pairing?
//
//	A small, dependency-light toolkit that brings together:
//		• Values: NumberPair, an immutable (first, sum) value with derived
//		  second, product, difference and result
//		• Search: a coarse-to-fine grid refinement over [0, sum/2]
//		• Reports: short and long text renderings of pairs and searches
//		• A CLI: pairing [sum] [collect-others]
//
// Under the hood, everything is organized under these packages:
//
//	pair/        — NumberPair value type and the deduplicating Set
//	search/      — Solve, its functional options and per-round hook
//	format/      — compact float rendering shared by pair and report
//	report/      — the full search report (optionally styled)
//	config/      — YAML configuration with environment overrides
//	cmd/pairing/ — cobra command wiring config, logging, search and report
//
// Quick example:
//
//	res, _ := search.Solve(8)
//	fmt.Println(res.Best())
//	// 1.6906 and 6.3094 -> 8 (Difference: 4.6188, Product: 10.6667 -> Result: 49.2672)
//
// For a sum S the exact optimum is a = S/2 − S/(2√3), which the search
// approaches to about ten significant digits within a handful of rounds.
//
//	go install github.com/katalvlaran/pairing/cmd/pairing@latest
package pairing

// Package format turns float64 values into short display strings.
//
// The search produces values such as 1.6905992296006942 or 49.26722297084675;
// reports want "1.6906" and "49.2672", and whole numbers without a fraction
// ("8", not "8.0000"). The helpers:
//
//   - Float: fixed number of decimals, trailing zeros stripped.
//   - Round: snap to a 1/precision grid first (e.g. 1000 → thousandths).
//   - Grouped: thousands separators for large sums ("9,000,000").
//   - Full: shortest text that parses back to the same float64.
//
// All helpers are pure and allocation-light; none of them panic.
package format

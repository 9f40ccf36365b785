package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// DefaultDigits is the number of decimals used by pair and search reports.
const DefaultDigits = 4

// DefaultRoundPrecision rounds to thousandths.
const DefaultRoundPrecision = 1_000

// maxDigits is the widest fraction humanize renders before truncating.
const maxDigits = 6

// Float renders v with at most digits decimals and drops trailing zeros
// together with a dangling decimal point:
//
//	Float(16.0, 4)    == "16"
//	Float(12.20, 4)   == "12.2"
//	Float(0.12346, 4) == "0.1235"
//
// digits is clamped to [0, 6]; the value is rounded half away from zero
// before rendering.
func Float(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	digits = min(max(digits, 0), maxDigits)
	scale := math.Pow10(digits)
	s := humanize.FtoaWithDigits(math.Round(v*scale)/scale, digits)
	if s == "-0" {
		return "0"
	}

	return s
}

// Round snaps v to the nearest multiple of 1/precision and renders the
// result; whole numbers are printed without a fractional part.
//
//	Round(16.0, 1000)      == "16"
//	Round(12.20, 1000)     == "12.2"
//	Round(2.718281, 1000)  == "2.718"
//
// A non-positive precision leaves v unrounded.
func Round(v, precision float64) string {
	reduced := v
	if precision > 0 {
		reduced = math.Round(v*precision) / precision
	}
	if math.IsNaN(reduced) || math.IsInf(reduced, 0) {
		return strconv.FormatFloat(reduced, 'f', -1, 64)
	}
	if reduced == math.Trunc(reduced) {
		if reduced == 0 {
			return "0"
		}

		return strconv.FormatFloat(reduced, 'f', 0, 64)
	}

	return strconv.FormatFloat(reduced, 'f', -1, 64)
}

// Grouped renders v with comma thousands separators, e.g. 9000000 → "9,000,000".
func Grouped(v float64) string {
	return humanize.Commaf(v)
}

// Full renders v with the shortest representation that round-trips,
// switching to exponent notation for very large or small magnitudes
// (49.26722297084675, 7.014805770653955e+19).
func Full(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

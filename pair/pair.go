package pair

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pairing/format"
)

// DefaultSum is the sum used when a caller does not provide one.
const DefaultSum float64 = 8

// MinimumPrecision is the result tolerance below which two pairs are
// considered equivalent by IsEquivalentTo.
const MinimumPrecision = 1e-10

// NumberPair is one split of sum into first and sum−first.
//
// The zero value is the degenerate pair of sum 0.
type NumberPair struct {
	sum   float64
	first float64
}

// Key identifies a pair up to mirroring: (a, b) and (b, a) of the same sum
// produce the same Key.
type Key struct {
	Sum float64
	Low float64
}

// New returns the pair of sum whose first number is min(|chosen|, sum).
//
// Complexity: O(1).
func New(chosen, sum float64) NumberPair {
	return NumberPair{sum: sum, first: clamp(chosen, sum)}
}

// clamp reflects negative values and caps the result at sum.
func clamp(v, sum float64) float64 {
	v = math.Abs(v)
	if v > sum {
		return sum
	}

	return v
}

// Sum returns the fixed total of the pair.
func (p NumberPair) Sum() float64 { return p.sum }

// First returns the chosen (clamped) value.
func (p NumberPair) First() float64 { return p.first }

// Second returns sum − first.
func (p NumberPair) Second() float64 { return p.sum - p.first }

// Product returns first × second.
func (p NumberPair) Product() float64 { return p.first * p.Second() }

// Difference returns |first − second|.
func (p NumberPair) Difference() float64 { return math.Abs(p.first - p.Second()) }

// Result returns product × difference, the quantity the search maximizes.
func (p NumberPair) Result() float64 { return p.Product() * p.Difference() }

// WithFirst returns a copy of p with the chosen value replaced (and clamped).
func (p NumberPair) WithFirst(v float64) NumberPair {
	return NumberPair{sum: p.sum, first: clamp(v, p.sum)}
}

// WithSecond returns a copy of p whose second number is v (clamped), i.e.
// whose first number becomes sum − clamp(v).
func (p NumberPair) WithSecond(v float64) NumberPair {
	return NumberPair{sum: p.sum, first: p.sum - clamp(v, p.sum)}
}

// Equal reports whether p and other describe the same split of the same sum.
// A pair equals its mirror image: New(2, 8).Equal(New(6, 8)) is true.
func (p NumberPair) Equal(other NumberPair) bool {
	if p.sum != other.sum {
		return false
	}

	return p.first == other.first || p.first == other.Second()
}

// Compare orders pairs by Result only. It returns -1, 0 or +1.
// Pairs with equal results compare as 0 even when their splits differ.
func (p NumberPair) Compare(other NumberPair) int {
	a, b := p.Result(), other.Result()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether p.Result() < other.Result().
func (p NumberPair) Less(other NumberPair) bool { return p.Result() < other.Result() }

// ResultDelta returns |p.Result() − other.Result()|.
func (p NumberPair) ResultDelta(other NumberPair) float64 {
	return math.Abs(p.Result() - other.Result())
}

// IsEquivalentTo reports whether the results of p and other differ by less
// than MinimumPrecision. Equivalent pairs need not be Equal.
func (p NumberPair) IsEquivalentTo(other NumberPair) bool {
	return p.IsEquivalentWithin(other, MinimumPrecision)
}

// IsEquivalentWithin is IsEquivalentTo with an explicit tolerance.
func (p NumberPair) IsEquivalentWithin(other NumberPair, tol float64) bool {
	return p.ResultDelta(other) < tol
}

// Key returns the mirror-insensitive identity of p.
func (p NumberPair) Key() Key {
	return Key{Sum: p.sum, Low: math.Min(p.first, p.Second())}
}

// String renders the short report:
//
//	2 and 6 -> 8 (Difference: 4, Product: 12 -> Result: 48)
func (p NumberPair) String() string {
	const d = format.DefaultDigits

	return fmt.Sprintf("%s and %s -> %s (Difference: %s, Product: %s -> Result: %s)",
		format.Float(p.first, d),
		format.Float(p.Second(), d),
		format.Float(p.sum, d),
		format.Float(p.Difference(), d),
		format.Float(p.Product(), d),
		format.Float(p.Result(), d),
	)
}

package pair_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pairing/pair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet keeps the randomized property checks reproducible.
	seedDet = int64(1)

	// propertyRuns is the number of random (chosen, sum) draws per property.
	propertyRuns = 2_000

	// epsSum absorbs rounding in first + second == sum.
	epsSum = 1e-9
)

// TestNew_Creation checks the stored and derived numbers of a plain pair.
func TestNew_Creation(t *testing.T) {
	p := pair.New(2, 8)
	assert.Equal(t, 2.0, p.First(), "first number should be 2")
	assert.Equal(t, 6.0, p.Second(), "second number should be 6")
	assert.Equal(t, 8.0, p.Sum(), "sum should be 8")
	assert.Equal(t, 12.0, p.Product())
	assert.Equal(t, 4.0, p.Difference())
	assert.Equal(t, 48.0, p.Result())
}

// TestNew_Clamping covers reflection of negatives and capping at the sum.
func TestNew_Clamping(t *testing.T) {
	cases := []struct {
		name       string
		chosen     float64
		sum        float64
		wantFirst  float64
		wantSecond float64
	}{
		{"in range", 3, 8, 3, 5},
		{"negative reflected", -3, 8, 3, 5},
		{"above sum clamps", 100, 8, 8, 0},
		{"negative above sum clamps", -100, 8, 8, 0},
		{"exactly sum", 8, 8, 8, 0},
		{"zero", 0, 8, 0, 8},
		{"zero sum", 5, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := pair.New(tc.chosen, tc.sum)
			assert.Equal(t, tc.wantFirst, p.First())
			assert.Equal(t, tc.wantSecond, p.Second())
		})
	}
}

// TestNew_Invariants draws random inputs and checks the range and sum invariants.
func TestNew_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < propertyRuns; i++ {
		sum := rng.Float64() * 1_000
		chosen := (rng.Float64()*2 - 1) * 2_000
		p := pair.New(chosen, sum)

		require.GreaterOrEqual(t, p.First(), 0.0, "first must be non-negative (chosen=%v sum=%v)", chosen, sum)
		require.LessOrEqual(t, p.First(), sum, "first must not exceed the sum")
		require.GreaterOrEqual(t, p.Second(), 0.0)
		require.LessOrEqual(t, p.Second(), sum)
		require.InDelta(t, sum, p.First()+p.Second(), epsSum)
	}
}

// TestResult_IsProductTimesDifference checks the derived metric on random pairs.
func TestResult_IsProductTimesDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < propertyRuns; i++ {
		p := pair.New(rng.Float64()*100, rng.Float64()*100)

		require.Equal(t, p.Product()*p.Difference(), p.Result())
		require.GreaterOrEqual(t, p.Product(), 0.0)
		require.GreaterOrEqual(t, p.Difference(), 0.0)
		require.GreaterOrEqual(t, p.Result(), 0.0)
	}
}

// TestEqual covers plain, mirrored and cross-sum equality.
func TestEqual(t *testing.T) {
	twoOfEight := pair.New(2, 8)
	twoAlsoOfEight := pair.New(2, 8)
	sixOfEight := pair.New(6, 8)
	threeOfEight := pair.New(3, 8)
	threeOfTen := pair.New(3, 10)

	assert.True(t, twoOfEight.Equal(twoAlsoOfEight), "same split must be equal")
	assert.True(t, twoOfEight.Equal(sixOfEight), "mirror split must be equal")
	assert.True(t, sixOfEight.Equal(twoOfEight), "equality must be symmetric")
	assert.False(t, threeOfEight.Equal(sixOfEight))
	assert.False(t, threeOfEight.Equal(threeOfTen), "different sums are never equal")
}

// TestEqual_SymmetricMirror checks (a, s−a) == (s−a, a) for dyadic splits,
// which are exact in binary floating point.
func TestEqual_SymmetricMirror(t *testing.T) {
	for _, a := range []float64{0, 0.5, 1.25, 3, 4, 7.75, 8} {
		p := pair.New(a, 8)
		m := pair.New(8-a, 8)
		assert.True(t, p.Equal(m), "a=%v", a)
		assert.True(t, m.Equal(p), "a=%v", a)
		assert.Equal(t, p.Key(), m.Key(), "mirror pairs share a key, a=%v", a)
	}
}

// TestCompare orders by result only.
func TestCompare(t *testing.T) {
	two := pair.New(2, 8)
	six := pair.New(6, 8)
	three := pair.New(3, 8)

	assert.Equal(t, 0, two.Compare(six), "equal results compare as 0")
	assert.Equal(t, -1, three.Compare(six), "30 < 48")
	assert.Equal(t, 1, six.Compare(three), "48 > 30")
	assert.True(t, three.Less(six))
	assert.False(t, six.Less(two))

	// Order-equivalent without being Equal.
	a, b := pair.New(0, 8), pair.New(0, 10)
	assert.Equal(t, 0, a.Compare(b))
	assert.False(t, a.Equal(b))
}

// TestIsEquivalentTo separates near-equality from Equal.
func TestIsEquivalentTo(t *testing.T) {
	p := pair.New(2, 8)
	assert.True(t, p.IsEquivalentTo(pair.New(6, 8)))
	assert.False(t, p.IsEquivalentTo(pair.New(3, 8)))

	q := pair.New(2+1e-13, 8)
	assert.False(t, p.Equal(q), "distinct splits are not Equal")
	assert.True(t, p.IsEquivalentTo(q), "results within 1e-10 are equivalent")
	assert.Less(t, p.ResultDelta(q), pair.MinimumPrecision)

	assert.True(t, p.IsEquivalentWithin(pair.New(3, 8), 20))
	assert.False(t, p.IsEquivalentWithin(pair.New(3, 8), 18))
}

// TestWithFirstAndSecond checks the copy-on-write setters.
func TestWithFirstAndSecond(t *testing.T) {
	p := pair.New(2, 8)

	q := p.WithFirst(-5)
	assert.Equal(t, 5.0, q.First())
	assert.Equal(t, 2.0, p.First(), "original is untouched")

	r := p.WithSecond(1)
	assert.Equal(t, 7.0, r.First())
	assert.Equal(t, 1.0, r.Second())

	assert.Equal(t, 8.0, p.WithSecond(42).Second(), "second is clamped as well")
}

// TestKey uses the smaller number of the split.
func TestKey(t *testing.T) {
	assert.Equal(t, pair.Key{Sum: 8, Low: 2}, pair.New(6, 8).Key())
	assert.Equal(t, pair.Key{Sum: 8, Low: 2}, pair.New(2, 8).Key())
	assert.NotEqual(t, pair.New(2, 8).Key(), pair.New(2, 10).Key())
}

// TestString renders the short report with trailing zeros stripped.
func TestString(t *testing.T) {
	assert.Equal(t, "2 and 6 -> 8 (Difference: 4, Product: 12 -> Result: 48)", pair.New(2, 8).String())
	assert.Equal(t, "2.5 and 7.5 -> 10 (Difference: 5, Product: 18.75 -> Result: 93.75)", pair.New(2.5, 10).String())
}

// TestZeroValue is the degenerate pair of sum 0.
func TestZeroValue(t *testing.T) {
	var p pair.NumberPair
	assert.Equal(t, 0.0, p.Result())
	assert.True(t, p.Equal(pair.New(0, 0)))
	assert.False(t, math.IsNaN(p.Difference()))
}

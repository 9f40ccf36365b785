package pair_test

import (
	"testing"

	"github.com/katalvlaran/pairing/pair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSet_DedupesMirrors ensures a pair and its mirror occupy one slot.
func TestSet_DedupesMirrors(t *testing.T) {
	s := pair.NewSet()
	assert.True(t, s.Add(pair.New(2, 8)))
	assert.False(t, s.Add(pair.New(6, 8)), "mirror must be rejected")
	assert.False(t, s.Add(pair.New(2, 8)), "duplicate must be rejected")
	assert.True(t, s.Add(pair.New(2, 10)), "different sum is a different pair")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(pair.New(6, 8)))
	assert.False(t, s.Contains(pair.New(3, 8)))
}

// TestSet_AddAllAndClear merges sets and empties them.
func TestSet_AddAllAndClear(t *testing.T) {
	a := pair.NewSet(pair.New(1, 8), pair.New(2, 8))
	b := pair.NewSet(pair.New(6, 8), pair.New(3, 8))
	a.AddAll(b)
	assert.Equal(t, 3, a.Len())

	seen := 0
	a.Each(func(pair.NumberPair) { seen++ })
	assert.Equal(t, 3, seen)

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 2, b.Len(), "source set is untouched")
}

// TestSet_Ordering checks both deterministic orderings.
func TestSet_Ordering(t *testing.T) {
	// results: 1→42, 2→48, 3→30, 0.5→26.25
	s := pair.NewSet(pair.New(3, 8), pair.New(1, 8), pair.New(0.5, 8), pair.New(2, 8))

	byFirst := s.Slice()
	require.Len(t, byFirst, 4)
	assert.Equal(t, []float64{0.5, 1, 2, 3}, firsts(byFirst))

	byResult := s.SortedByResult()
	require.Len(t, byResult, 4)
	assert.Equal(t, []float64{2, 1, 3, 0.5}, firsts(byResult))
	for i := 1; i < len(byResult); i++ {
		assert.GreaterOrEqual(t, byResult[i-1].Result(), byResult[i].Result())
	}
}

func firsts(ps []pair.NumberPair) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.First()
	}

	return out
}

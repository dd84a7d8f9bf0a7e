package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDeterministic(t *testing.T) {
	a := Derive(42, "rhythm")
	b := Derive(42, "rhythm")

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestDeriveStreamsIndependent(t *testing.T) {
	// Consuming one stream must not disturb another derived from the
	// same seed.
	a1 := Derive(7, "bassline")
	other := Derive(7, "lead")
	for i := 0; i < 50; i++ {
		other.Float64()
	}
	a2 := Derive(7, "bassline")

	for i := 0; i < 20; i++ {
		assert.Equal(t, a1.IntN(1000), a2.IntN(1000))
	}
}

func TestDeriveDistinctNames(t *testing.T) {
	a := Derive(1, "rhythm")
	b := Derive(1, "lead")

	same := true
	for i := 0; i < 10; i++ {
		if a.IntN(1 << 30) != b.IntN(1 << 30) {
			same = false
		}
	}
	assert.False(t, same, "different names should give different sequences")
}

func TestRange(t *testing.T) {
	rs := Derive(3, "test")
	for i := 0; i < 100; i++ {
		v := rs.Range(5, 9)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 9)
	}
	assert.Equal(t, 4, rs.Range(4, 4))
	assert.Equal(t, 4, rs.Range(4, 2))
}

func TestJitterBounds(t *testing.T) {
	rs := Derive(9, "test")
	for i := 0; i < 200; i++ {
		v := rs.Jitter(5)
		assert.GreaterOrEqual(t, v, -5)
		assert.LessOrEqual(t, v, 5)
	}
}

func TestWeighted(t *testing.T) {
	rs := Derive(11, "test")
	options := []string{"a", "b", "c"}

	t.Run("zero weights fall back to first", func(t *testing.T) {
		got := rs.Weighted(options, []float64{0, 0, 0})
		assert.Equal(t, "a", got)
	})

	t.Run("single positive weight always wins", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			got := rs.Weighted(options, []float64{0, 1, 0})
			assert.Equal(t, "b", got)
		}
	})

	t.Run("all options reachable", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 500; i++ {
			seen[rs.Weighted(options, []float64{1, 1, 1})] = true
		}
		assert.Len(t, seen, 3)
	})
}

package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom_IntBetween(t *testing.T) {
	t.Run("Stays within bounds", func(t *testing.T) {
		// Given: a seeded source
		src := NewRandom(42)

		// When: drawing many values
		for range 500 {
			v := src.IntBetween(1, 10)

			// Then: every value is within the inclusive range
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 10)
		}
	})

	t.Run("Same seed gives the same values", func(t *testing.T) {
		a, b := NewRandom(7), NewRandom(7)

		for range 20 {
			assert.Equal(t, a.IntBetween(0, 100), b.IntBetween(0, 100))
		}
	})

	t.Run("Degenerate range returns low", func(t *testing.T) {
		assert.Equal(t, 3, NewRandom(1).IntBetween(3, 3))
	})
}

func TestSequence(t *testing.T) {
	t.Run("Replays values and wraps around", func(t *testing.T) {
		// Given: a sequence of two values
		src := NewSequence(1, 2)

		// Then: values come back in order, folded into the range
		assert.Equal(t, 1, src.IntBetween(0, 9))
		assert.Equal(t, 2, src.IntBetween(0, 9))
		assert.Equal(t, 1, src.IntBetween(0, 9))
	})

	t.Run("Folds values into the range", func(t *testing.T) {
		src := NewSequence(7, -1)

		assert.Equal(t, 2, src.IntBetween(1, 3))
		assert.Equal(t, 3, src.IntBetween(1, 3))
	})

	t.Run("Empty sequence returns low", func(t *testing.T) {
		assert.Equal(t, 4, NewSequence().IntBetween(4, 8))
	})
}

func TestChoice(t *testing.T) {
	// Given: a sequence that picks the last index
	src := NewSequence(2)

	// When: choosing from three items
	got := Choice(src, []string{"BB8", "R2D2", "C3PO"})

	// Then: the third item is returned
	assert.Equal(t, "C3PO", got)
}

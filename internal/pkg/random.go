package pkg

import (
	"math/rand"
	"time"
)

// Source - pluggable randomness. IntBetween returns a value in [low, high].
type Source interface {
	IntBetween(low, high int) int
}

// Choice picks one of items using src. items must not be empty.
func Choice[T any](src Source, items []T) T {
	return items[src.IntBetween(0, len(items)-1)]
}

type Random struct {
	rnd *rand.Rand
}

// NewRandom - seed 0 seeds from the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Random{rnd: rand.New(rand.NewSource(seed))} //nolint: gosec // it's a game
}

func (that *Random) IntBetween(low, high int) int {
	if high <= low {
		return low
	}

	return low + that.rnd.Intn(high-low+1)
}

// Sequence replays the given values in order, wrapping around, each one folded
// into the requested range. An empty Sequence always returns low.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (that *Sequence) IntBetween(low, high int) int {
	if len(that.values) == 0 || high <= low {
		return low
	}

	v := that.values[that.next%len(that.values)]
	that.next++

	span := high - low + 1
	return low + ((v%span)+span)%span
}

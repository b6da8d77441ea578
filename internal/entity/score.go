package entity

// Score - counts round wins per player identity.
type Score struct {
	tally map[string]int
	// wins in the order they were recorded
	history []string
}

func NewScore() *Score {
	return &Score{tally: make(map[string]int)}
}

// RecordWin adds one round win for the given identity.
func (that *Score) RecordWin(id string) {
	that.tally[id]++
	that.history = append(that.history, id)
}

// CountFor returns the current count, zero for unknown identities.
func (that *Score) CountFor(id string) int {
	return that.tally[id]
}

// LeaderAtThreshold returns the identity whose count first reached threshold.
func (that *Score) LeaderAtThreshold(threshold int) (string, bool) {
	if threshold <= 0 {
		return "", false
	}

	running := make(map[string]int, len(that.tally))
	for _, id := range that.history {
		running[id]++
		if running[id] == threshold {
			return id, true
		}
	}

	return "", false
}

func (that *Score) Reset() {
	that.tally = make(map[string]int)
	that.history = nil
}

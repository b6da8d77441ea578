package rps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	t.Run("Keeps moves in order per player", func(t *testing.T) {
		// Given: a record with two rounds
		record := NewRecord()
		record.Add("h", Rock)
		record.Add("r", Lizard)
		record.Add("h", Spock)
		record.Add("r", Lizard)

		// Then: each player's moves are kept in order
		assert.Equal(t, []Move{Rock, Spock}, record.Moves("h"))
		assert.Equal(t, []Move{Lizard, Lizard}, record.Moves("r"))
	})

	t.Run("Table lists one row per round", func(t *testing.T) {
		record := NewRecord()
		record.Add("h", Rock)
		record.Add("r", Paper)

		lines := record.Table("h", "Ann", "r", "Bob")

		require.Len(t, lines, 2)
		assert.Equal(t, "| Move# |      Ann      |      Bob      |", lines[0])
		assert.Equal(t, "|   1   |     rock      |     paper     |", lines[1])
	})

	t.Run("Reset forgets every move", func(t *testing.T) {
		record := NewRecord()
		record.Add("h", Rock)

		record.Reset()

		assert.Empty(t, record.Moves("h"))
	})
}

package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRound(t *testing.T) {
	// When: creating a round with O to move
	round := NewRound(MarkO)

	// Then: the board is empty, O moves and the round is ongoing
	assert.Len(t, round.Board.EmptyPositions(), 9)
	assert.Equal(t, MarkO, round.Turn)
	assert.Equal(t, StatusOngoing, round.Status)
	assert.Empty(t, round.Winner)
}

func TestRound_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new round
		round := NewRound(MarkX)

		// When: player X makes a turn
		err := round.MakeTurn(MarkX, 1)
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to O
		assert.Equal(t, MarkX, round.Board.At(1))
		assert.Equal(t, MarkO, round.Turn)
		assert.Equal(t, StatusOngoing, round.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X on cell 1
		round := NewRound(MarkX)
		require.NoError(t, round.MakeTurn(MarkX, 1))

		// When: player O tries the same cell
		err := round.MakeTurn(MarkO, 1)

		// Then: ErrCellOccupied is returned and it is still O's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkO, round.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		round := NewRound(MarkX)

		err := round.MakeTurn(MarkO, 2)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.True(t, round.Board.IsEmpty(2))
	})

	t.Run("Invalid position", func(t *testing.T) {
		round := NewRound(MarkX)

		err := round.MakeTurn(MarkX, 10)

		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
		assert.Equal(t, MarkX, round.Turn)
	})

	t.Run("Completed line finishes the round", func(t *testing.T) {
		// Given: X on 1,2 and O on 4,5
		round := NewRound(MarkX)
		for _, turn := range []struct {
			mark     string
			position int
		}{{MarkX, 1}, {MarkO, 4}, {MarkX, 2}, {MarkO, 5}} {
			require.NoError(t, round.MakeTurn(turn.mark, turn.position))
		}

		// When: X completes the top row
		require.NoError(t, round.MakeTurn(MarkX, 3))

		// Then: X wins, the round is finished and nobody is to move
		assert.True(t, round.IsFinished())
		assert.Equal(t, MarkX, round.Winner)
		assert.Empty(t, round.Turn)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		round := NewRound(MarkX)
		for i, position := range []int{1, 2, 3, 5, 4, 6, 8, 7, 9} {
			mark := MarkX
			if i%2 == 1 {
				mark = MarkO
			}
			require.NoError(t, round.MakeTurn(mark, position))
		}

		assert.True(t, round.IsFinished())
		assert.True(t, round.IsTie())
	})

	t.Run("Win on the last cell is not a tie", func(t *testing.T) {
		round := NewRound(MarkX)
		for i, position := range []int{1, 2, 3, 5, 4, 6, 8, 9, 7} {
			mark := MarkX
			if i%2 == 1 {
				mark = MarkO
			}
			require.NoError(t, round.MakeTurn(mark, position))
		}

		assert.True(t, round.IsFinished())
		assert.Equal(t, MarkX, round.Winner)
		assert.False(t, round.IsTie())
	})

	t.Run("Move after round finished", func(t *testing.T) {
		round := NewRound(MarkX)
		round.Status = StatusFinished

		err := round.MakeTurn(MarkX, 3)

		require.ErrorIs(t, err, apperror.ErrRoundFinished)
	})
}

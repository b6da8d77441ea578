package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Round - one board played until a line is completed or the board is full.
type Round struct {
	Board  *Board
	Turn   string
	Winner string
	Status string
}

// NewRound starts a round on an empty board with firstMark to move.
func NewRound(firstMark string) *Round {
	return &Round{
		Board:  NewBoard(),
		Turn:   firstMark,
		Status: StatusOngoing,
	}
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Round) IsTie() bool {
	return that.Winner == MarkTie
}

func (that *Round) MakeTurn(mark string, position int) error {
	if that.IsFinished() {
		return apperror.ErrRoundFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(position, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.updateStatus(mark)

	return nil
}

// updateStatus - checks the round status after a turn.
func (that *Round) updateStatus(mark string) {
	switch winner := checkRoundStatus(that.Board); winner {
	case MarkX, MarkO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case MarkTie:
		that.Winner = MarkTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Turn = OtherMark(mark)
	}
}

// checkRoundStatus returns the winning mark, MarkTie for a full board, or "".
func checkRoundStatus(board *Board) string {
	if mark, ok := board.WinningMark(); ok {
		return mark
	}

	if board.IsFull() {
		return MarkTie
	}

	return ""
}

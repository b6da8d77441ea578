package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/pkg"
)

// ChooseMove picks the computer's position: win, else block, else center,
// else a random empty cell.
func ChooseMove(board *Board, self, opponent string, rng pkg.Source) (int, error) {
	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if position, ok := DetectSquare(board, self); ok {
		return position, nil
	}

	if position, ok := DetectSquare(board, opponent); ok {
		return position, nil
	}

	if board.IsEmpty(CenterPosition) {
		return CenterPosition, nil
	}

	if rng == nil {
		return 0, fmt.Errorf("%w: no random source", apperror.ErrNoAvailableMoves)
	}

	return pkg.Choice(rng, empty), nil
}

// DetectSquare returns the empty cell of the first line holding two of mark
// and one empty cell.
func DetectSquare(board *Board, mark string) (int, bool) {
	for _, combo := range WinCombos {
		marks := board.MarksAt(combo)

		marked, emptyIdx := 0, -1
		for i, cell := range marks {
			switch cell {
			case mark:
				marked++
			case EmptyCell:
				emptyIdx = i
			}
		}

		if marked == 2 && emptyIdx >= 0 {
			return combo[emptyIdx], true
		}
	}

	return 0, false
}

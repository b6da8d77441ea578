package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

const (
	MarkX = "X"
	MarkO = "O"
	// MarkTie is the round winner when the board filled up without a line.
	MarkTie = "-"

	EmptyCell = ""

	CenterPosition = 5
	cellsCount     = 9
)

// WinCombos - the 8 lines by position, scanned rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Board - 3x3 grid addressed by positions 1-9, row-major.
type Board struct {
	cells [cellsCount]string
}

func NewBoard() *Board {
	return &Board{}
}

// NewBoardFrom builds a board from 9 marks in position order.
func NewBoardFrom(cells [cellsCount]string) (*Board, error) {
	for i, cell := range cells {
		if cell != EmptyCell && !isMark(cell) {
			return nil, fmt.Errorf("%w: %q at position %d", apperror.ErrInvalidMark, cell, i+1)
		}
	}

	return &Board{cells: cells}, nil
}

func (that *Board) Place(position int, mark string) error {
	if !isMark(mark) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !validPosition(position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if that.cells[position-1] != EmptyCell {
		return fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	that.cells[position-1] = mark

	return nil
}

// At returns the mark at position, EmptyCell for an unmarked or invalid one.
func (that *Board) At(position int) string {
	if !validPosition(position) {
		return EmptyCell
	}

	return that.cells[position-1]
}

func (that *Board) MarksAt(line [3]int) [3]string {
	return [3]string{that.At(line[0]), that.At(line[1]), that.At(line[2])}
}

func (that *Board) EmptyPositions() []int {
	positions := make([]int, 0, cellsCount)
	for i, cell := range that.cells {
		if cell == EmptyCell {
			positions = append(positions, i+1)
		}
	}

	return positions
}

func (that *Board) IsEmpty(position int) bool {
	return validPosition(position) && that.cells[position-1] == EmptyCell
}

func (that *Board) IsFull() bool {
	return len(that.EmptyPositions()) == 0
}

// WinningMark returns the mark of the first complete line in scan order.
func (that *Board) WinningMark() (string, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.At(combo[0]), that.At(combo[1]), that.At(combo[2])
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

func (that *Board) Reset() {
	that.cells = [cellsCount]string{}
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString("-----+-----+-----\n")
		}

		sb.WriteString("     |     |     \n")
		for col := range 3 {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := that.cells[row*3+col]
			if cell == EmptyCell {
				cell = " "
			}
			fmt.Fprintf(&sb, "  %s  ", cell)
		}
		sb.WriteString("\n     |     |     \n")
	}

	return sb.String()
}

func isMark(mark string) bool {
	return mark == MarkX || mark == MarkO
}

func validPosition(position int) bool {
	return position >= 1 && position <= cellsCount
}

// OtherMark - X for O and O for X.
func OtherMark(mark string) string {
	if mark == MarkX {
		return MarkO
	}
	return MarkX
}

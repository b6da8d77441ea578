package rps

import (
	"fmt"
	"strings"
)

const columnWidth = 15

// Record - moves chosen by each player during the current game, by player ID.
type Record struct {
	moves map[string][]Move
}

func NewRecord() *Record {
	return &Record{moves: make(map[string][]Move)}
}

func (that *Record) Add(playerID string, move Move) {
	that.moves[playerID] = append(that.moves[playerID], move)
}

func (that *Record) Moves(playerID string) []Move {
	return that.moves[playerID]
}

// Table renders both players' moves side by side.
func (that *Record) Table(firstID, firstName, secondID, secondName string) []string {
	lines := []string{
		fmt.Sprintf("| Move# |%s|%s|", center(firstName, columnWidth), center(secondName, columnWidth)),
	}

	first, second := that.moves[firstID], that.moves[secondID]
	for i, move := range first {
		var other Move
		if i < len(second) {
			other = second[i]
		}

		lines = append(lines, fmt.Sprintf("|   %d   |%s|%s|", i+1,
			center(string(move), columnWidth), center(string(other), columnWidth)))
	}

	return lines
}

func (that *Record) Reset() {
	that.moves = make(map[string][]Move)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}

	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

package rps

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
	Lizard   Move = "lizard"
	Spock    Move = "spock"
)

type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// Moves in display order.
var Moves = []Move{Rock, Paper, Scissors, Lizard, Spock}

// Beats - the moves each move defeats.
var Beats = map[Move][2]Move{
	Rock:     {Scissors, Lizard},
	Paper:    {Spock, Rock},
	Scissors: {Lizard, Paper},
	Lizard:   {Spock, Paper},
	Spock:    {Rock, Scissors},
}

var shortcuts = map[string]Move{
	"r": Rock,
	"p": Paper,
	"s": Scissors,
	"l": Lizard,
	"k": Spock,
}

func (m Move) Valid() bool {
	_, ok := Beats[m]
	return ok
}

// Defeats reports whether m beats other.
func (m Move) Defeats(other Move) bool {
	for _, beaten := range Beats[m] {
		if beaten == other {
			return true
		}
	}
	return false
}

// Title - "Rock" for rock.
func (m Move) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// ParseMove accepts a move name or its single letter shortcut, any case.
func ParseMove(input string) (Move, error) {
	choice := strings.ToLower(strings.TrimSpace(input))
	if move, ok := shortcuts[choice]; ok {
		return move, nil
	}

	move := Move(choice)
	if !move.Valid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMove, input)
	}

	return move, nil
}

// Resolve compares two moves from the point of view of first.
func Resolve(first, second Move) (Outcome, error) {
	if !first.Valid() {
		return Tie, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, first)
	}

	if !second.Valid() {
		return Tie, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, second)
	}

	switch {
	case first == second:
		return Tie, nil
	case first.Defeats(second):
		return FirstWins, nil
	default:
		return SecondWins, nil
	}
}

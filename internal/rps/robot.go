package rps

import (
	"github.com/rocketscienceinc/terminal-games/internal/pkg"
)

// RobotKind - computer opponent personality.
type RobotKind int

const (
	// Larry always plays lizard.
	Larry RobotKind = iota
	// Johnny plays scissors 70% of the time, otherwise rock, lizard or spock.
	Johnny
	// Bob plays uniformly at random.
	Bob
)

var Robots = []RobotKind{Larry, Johnny, Bob}

var johnnyFallback = []Move{Rock, Lizard, Spock}

func (k RobotKind) String() string {
	switch k {
	case Larry:
		return "Larry"
	case Johnny:
		return "Johnny"
	case Bob:
		return "Bob"
	default:
		return "Robot"
	}
}

func (k RobotKind) Choose(rng pkg.Source) Move {
	switch k {
	case Larry:
		return Lizard
	case Johnny:
		if rng.IntBetween(1, 10) <= 7 {
			return Scissors
		}
		return pkg.Choice(rng, johnnyFallback)
	default:
		return pkg.Choice(rng, Moves)
	}
}

package entity

import (
	"time"

	"github.com/rocketscienceinc/terminal-games/internal/pkg"
)

const (
	GameRPS       = "rps"
	GameTicTacToe = "ttt"
)

// PlayerScore - final win count of one player in a record.
type PlayerScore struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Record - summary of a finished game. Scores follow the order players were given in.
type Record struct {
	ID         string        `json:"id"`
	Game       string        `json:"game"`
	WinnerID   string        `json:"winner_id"`
	Winner     string        `json:"winner"`
	Scores     []PlayerScore `json:"scores"`
	Rounds     int           `json:"rounds"`
	FinishedAt time.Time     `json:"finished_at"`
}

func NewRecord(game string, winner *Player, players []*Player, score *Score, rounds int) *Record {
	scores := make([]PlayerScore, 0, len(players))
	for _, player := range players {
		scores = append(scores, PlayerScore{
			ID:    player.ID,
			Name:  player.Name,
			Kind:  player.Kind,
			Count: score.CountFor(player.ID),
		})
	}

	return &Record{
		ID:         pkg.GenerateRecordID(),
		Game:       game,
		WinnerID:   winner.ID,
		Winner:     winner.Name,
		Scores:     scores,
		Rounds:     rounds,
		FinishedAt: time.Now().UTC(),
	}
}

// CountFor returns the final count of the player with id, 0 when absent.
func (that *Record) CountFor(id string) int {
	for _, score := range that.Scores {
		if score.ID == id {
			return score.Count
		}
	}

	return 0
}

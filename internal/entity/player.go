package entity

import "github.com/rocketscienceinc/terminal-games/internal/pkg"

const (
	KindHuman    = "human"
	KindComputer = "computer"
)

// Player - a participant of a game. ID is the identity the score is kept under,
// so two players sharing a name still score separately.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mark string `json:"mark,omitempty"`
	Kind string `json:"kind"`
}

func NewHumanPlayer(name string) *Player {
	return &Player{
		ID:   pkg.GeneratePlayerID(),
		Name: name,
		Kind: KindHuman,
	}
}

func NewComputerPlayer(name string) *Player {
	return &Player{
		ID:   pkg.GeneratePlayerID(),
		Name: name,
		Kind: KindComputer,
	}
}

func (that *Player) IsComputer() bool {
	return that.Kind == KindComputer
}

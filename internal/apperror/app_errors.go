package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidPosition  = errors.New("invalid board position")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrRoundFinished    = errors.New("round is already finished")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownGame      = errors.New("unknown game")
	ErrRecordNotFound   = errors.New("record not found")
)

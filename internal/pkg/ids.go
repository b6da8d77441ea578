package pkg

import "github.com/google/uuid"

// GeneratePlayerID - identity a player's score is kept under.
func GeneratePlayerID() string {
	return uuid.NewString()
}

// GenerateRecordID - id of a finished game record.
func GenerateRecordID() string {
	return uuid.NewString()
}

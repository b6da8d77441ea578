package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_RecordWin(t *testing.T) {
	t.Run("Counts every recorded win", func(t *testing.T) {
		// Given: a fresh score
		score := NewScore()

		// When: recording four wins for one player
		for range 4 {
			score.RecordWin("p1")
		}

		// Then: the count matches and other identities stay at zero
		assert.Equal(t, 4, score.CountFor("p1"))
		assert.Equal(t, 0, score.CountFor("unknown"))
	})
}

func TestScore_LeaderAtThreshold(t *testing.T) {
	t.Run("No leader until someone reaches the threshold", func(t *testing.T) {
		// Given: two players with two wins each
		score := NewScore()
		score.RecordWin("human")
		score.RecordWin("computer")
		score.RecordWin("human")
		score.RecordWin("computer")

		// When: asking for a leader at 3
		_, ok := score.LeaderAtThreshold(3)

		// Then: there is none
		assert.False(t, ok)

		// When: the computer wins once more
		score.RecordWin("computer")

		// Then: the computer is the leader
		leader, ok := score.LeaderAtThreshold(3)
		require.True(t, ok)
		assert.Equal(t, "computer", leader)
	})

	t.Run("The first identity to reach the threshold wins", func(t *testing.T) {
		// Given: human reaches 3 before computer does
		score := NewScore()
		for _, id := range []string{"human", "computer", "human", "computer", "human", "computer"} {
			score.RecordWin(id)
		}

		// When: asking for the leader
		leader, ok := score.LeaderAtThreshold(3)

		// Then: the human is reported
		require.True(t, ok)
		assert.Equal(t, "human", leader)
	})

	t.Run("Non positive threshold never has a leader", func(t *testing.T) {
		score := NewScore()
		score.RecordWin("human")

		_, ok := score.LeaderAtThreshold(0)
		assert.False(t, ok)
	})
}

func TestScore_Reset(t *testing.T) {
	// Given: a score with a leader
	score := NewScore()
	for range 3 {
		score.RecordWin("human")
	}

	// When: resetting
	score.Reset()

	// Then: all counts are zero and no leader remains
	assert.Equal(t, 0, score.CountFor("human"))
	_, ok := score.LeaderAtThreshold(3)
	assert.False(t, ok)
}

func TestNewRecord(t *testing.T) {
	// Given: two players and a finished score
	human := NewHumanPlayer("Ann")
	computer := NewComputerPlayer("BB8")
	score := NewScore()
	score.RecordWin(human.ID)
	score.RecordWin(computer.ID)
	score.RecordWin(human.ID)

	// When: building a record
	record := NewRecord(GameTicTacToe, human, []*Player{human, computer}, score, 4)

	// Then: the record carries names, scores and rounds
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, GameTicTacToe, record.Game)
	assert.Equal(t, "Ann", record.Winner)
	assert.Equal(t, human.ID, record.WinnerID)
	assert.Equal(t, []PlayerScore{
		{ID: human.ID, Name: "Ann", Kind: KindHuman, Count: 2},
		{ID: computer.ID, Name: "BB8", Kind: KindComputer, Count: 1},
	}, record.Scores)
	assert.Equal(t, 4, record.Rounds)
	assert.False(t, record.FinishedAt.IsZero())
}

func TestNewRecord_SameNames(t *testing.T) {
	// Given: a human who picked the robot's name and won 3:1
	human := NewHumanPlayer("Bob")
	robot := NewComputerPlayer("Bob")
	score := NewScore()
	score.RecordWin(robot.ID)
	for range 3 {
		score.RecordWin(human.ID)
	}

	// When: building a record
	record := NewRecord(GameRPS, human, []*Player{human, robot}, score, 4)

	// Then: both players keep their own count and the winner is the human
	require.Len(t, record.Scores, 2)
	assert.Equal(t, 3, record.CountFor(human.ID))
	assert.Equal(t, 1, record.CountFor(robot.ID))
	assert.Equal(t, 0, record.CountFor("unknown"))
	assert.Equal(t, human.ID, record.WinnerID)
	assert.Equal(t, KindHuman, record.Scores[0].Kind)
}

package rps

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/pkg"
)

type prompter interface {
	PromptLine(ctx context.Context, message string) (string, error)
	ConfirmYesNo(ctx context.Context, message string) (bool, error)
	Say(message string)
	Highlight(message string)
	Clear()
	Pause()
}

type messages interface {
	Text(key string, data map[string]any) string
}

// RoundResult - one simultaneous move pair and its outcome.
type RoundResult struct {
	HumanMove Move
	RobotMove Move
	Outcome   Outcome
	// Winner is nil on a tie.
	Winner *entity.Player
}

// GameController - plays rounds against a robot until one side reaches the threshold.
type GameController struct {
	logger    *slog.Logger
	console   prompter
	messages  messages
	rng       pkg.Source
	threshold int

	human     *entity.Player
	robot     *entity.Player
	robotKind RobotKind

	score  *entity.Score
	record *Record
	rounds int
}

func NewGameController(logger *slog.Logger, console prompter, messages messages, rng pkg.Source, threshold int) *GameController {
	return &GameController{
		logger:    logger.With("component", "rps"),
		console:   console,
		messages:  messages,
		rng:       rng,
		threshold: threshold,
		score:     entity.NewScore(),
		record:    NewRecord(),
	}
}

func (that *GameController) Name() string {
	return entity.GameRPS
}

func (that *GameController) Welcome() {
	that.console.Highlight(that.text("rps.welcome", nil))
	that.console.Say(that.text("rps.game_length", map[string]any{"Threshold": that.threshold}))
	that.console.Pause()
}

// Setup creates the human player and samples the robot opponent.
func (that *GameController) Setup(_ context.Context, humanName string) error {
	that.human = entity.NewHumanPlayer(humanName)
	that.robotKind = pkg.Choice(that.rng, Robots)
	that.robot = entity.NewComputerPlayer(that.robotKind.String())

	that.console.Say("")
	that.console.Say(that.text("rps.opponent", map[string]any{"Human": that.human.Name, "Robot": that.robot.Name}))
	that.console.Pause()

	that.logger.Debug("game set up", "human", that.human.Name, "robot", that.robot.Name)

	return nil
}

func (that *GameController) Human() *entity.Player {
	return that.human
}

func (that *GameController) Robot() *entity.Player {
	return that.robot
}

func (that *GameController) Score() *entity.Score {
	return that.score
}

// PlayRound plays one move pair, updates the score and shows the result.
func (that *GameController) PlayRound(ctx context.Context) (*RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	humanMove, err := that.askMove(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read move: %w", err)
	}

	robotMove := that.robotKind.Choose(that.rng)

	that.record.Add(that.human.ID, humanMove)
	that.record.Add(that.robot.ID, robotMove)

	that.showChoices(humanMove, robotMove)

	outcome, err := Resolve(humanMove, robotMove)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve round: %w", err)
	}

	result := &RoundResult{HumanMove: humanMove, RobotMove: robotMove, Outcome: outcome}
	switch outcome {
	case FirstWins:
		result.Winner = that.human
	case SecondWins:
		result.Winner = that.robot
	}

	that.rounds++
	if result.Winner != nil {
		that.score.RecordWin(result.Winner.ID)
	}

	that.showResult(result)
	that.showScore()

	that.logger.Debug("round finished", "round", that.rounds, "human", humanMove, "robot", robotMove, "outcome", outcome)

	return result, nil
}

// PlayGame plays rounds until the threshold is reached and returns the game record.
func (that *GameController) PlayGame(ctx context.Context) (*entity.Record, error) {
	var winner *entity.Player

	for {
		if _, err := that.PlayRound(ctx); err != nil {
			return nil, err
		}

		if id, ok := that.score.LeaderAtThreshold(that.threshold); ok {
			winner = that.playerByID(id)
			break
		}

		that.console.Pause()
		that.console.Clear()
	}

	that.console.Highlight(that.text("common.game_winner", map[string]any{"Threshold": that.threshold, "Name": winner.Name}))
	that.console.Pause()
	that.console.Say("")

	record := entity.NewRecord(entity.GameRPS, winner, []*entity.Player{that.human, that.robot}, that.score, that.rounds)

	show, err := that.console.ConfirmYesNo(ctx, that.text("rps.show_moves", nil))
	if err != nil {
		return record, fmt.Errorf("failed to read answer: %w", err)
	}

	if show {
		that.console.Say("")
		for _, line := range that.record.Table(that.human.ID, that.human.Name, that.robot.ID, that.robot.Name) {
			that.console.Say(line)
		}
		that.console.Say("")
	}

	that.logger.Info("game finished", "winner", winner.Name, "rounds", that.rounds)

	return record, nil
}

// Reset clears the score and the move record for a new game.
func (that *GameController) Reset() {
	that.score.Reset()
	that.record.Reset()
	that.rounds = 0
}

func (that *GameController) askMove(ctx context.Context) (Move, error) {
	for {
		input, err := that.console.PromptLine(ctx, that.text("rps.move_options", nil))
		if err != nil {
			return "", err
		}

		move, err := ParseMove(input)
		if err == nil {
			return move, nil
		}

		that.console.Say(that.text("rps.invalid_move", nil))
	}
}

func (that *GameController) showChoices(humanMove, robotMove Move) {
	that.console.Pause()
	that.console.Say("")
	that.console.Say(that.text("rps.chose", map[string]any{"Name": that.human.Name, "Move": humanMove.Title()}))
	that.console.Pause()
	that.console.Say(that.text("rps.chose", map[string]any{"Name": that.robot.Name, "Move": robotMove.Title()}))
	that.console.Pause()
}

func (that *GameController) showResult(result *RoundResult) {
	if result.Winner == nil {
		that.console.Say(that.text("rps.tie", nil))
		return
	}

	winning, losing := result.HumanMove, result.RobotMove
	if result.Outcome == SecondWins {
		winning, losing = losing, winning
	}

	that.console.Say(that.text("rps.beats", map[string]any{"Winner": winning.Title(), "Loser": losing.Title()}))
	that.console.Pause()
	that.console.Say(that.text("rps.round_winner", map[string]any{"Name": result.Winner.Name}))
}

func (that *GameController) showScore() {
	that.console.Pause()
	that.console.Say("")
	that.console.Highlight(that.text("common.score_header", nil))
	for _, player := range []*entity.Player{that.human, that.robot} {
		that.console.Say(that.text("common.score_line", map[string]any{"Name": player.Name, "Count": that.score.CountFor(player.ID)}))
	}
	that.console.Say("")
}

func (that *GameController) playerByID(id string) *entity.Player {
	if that.robot != nil && that.robot.ID == id {
		return that.robot
	}
	return that.human
}

func (that *GameController) text(key string, data map[string]any) string {
	return that.messages.Text(key, data)
}

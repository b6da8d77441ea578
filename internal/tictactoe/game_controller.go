package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/pkg"
)

var computerNames = []string{"BB8", "R2D2", "C3PO"}

type prompter interface {
	PromptLine(ctx context.Context, message string) (string, error)
	Say(message string)
	Highlight(message string)
	Clear()
	Pause()
}

type messages interface {
	Text(key string, data map[string]any) string
}

// GameController - plays Tic-Tac-Toe rounds against the computer until one
// side reaches the threshold. The first mover alternates every round.
type GameController struct {
	logger    *slog.Logger
	console   prompter
	messages  messages
	rng       pkg.Source
	threshold int

	human    *entity.Player
	computer *entity.Player

	score       *entity.Score
	round       *Round
	firstToMove *entity.Player
	rounds      int
}

func NewGameController(logger *slog.Logger, console prompter, messages messages, rng pkg.Source, threshold int) *GameController {
	return &GameController{
		logger:    logger.With("component", "tictactoe"),
		console:   console,
		messages:  messages,
		rng:       rng,
		threshold: threshold,
		score:     entity.NewScore(),
	}
}

func (that *GameController) Name() string {
	return entity.GameTicTacToe
}

func (that *GameController) Welcome() {
	that.console.Highlight(that.text("ttt.welcome", nil))
	that.console.Say(that.text("ttt.game_length", map[string]any{"Threshold": that.threshold}))
	that.console.Say("")
}

// Setup creates both players, lets the human pick a mark and prepares round one.
func (that *GameController) Setup(ctx context.Context, humanName string) error {
	that.human = entity.NewHumanPlayer(humanName)
	that.computer = entity.NewComputerPlayer(pkg.Choice(that.rng, computerNames))

	that.console.Say("")
	that.console.Say(that.text("ttt.opponent", map[string]any{"Human": that.human.Name, "Computer": that.computer.Name}))
	that.console.Say("")

	mark, err := that.askMark(ctx)
	if err != nil {
		return fmt.Errorf("failed to read mark: %w", err)
	}

	that.human.Mark = mark
	that.computer.Mark = OtherMark(mark)

	that.console.Say("")
	that.console.Say(that.text("ttt.marker_chosen", map[string]any{"Mark": mark}))
	that.console.Say("")
	that.console.Say(that.text("ttt.first_player", map[string]any{"Computer": that.computer.Name}))
	that.console.Say("")

	if _, err = that.console.PromptLine(ctx, that.text("common.continue", nil)); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	that.firstToMove = that.human
	that.round = NewRound(that.human.Mark)

	that.logger.Debug("game set up", "human", that.human.Name, "computer", that.computer.Name, "mark", mark)

	return nil
}

func (that *GameController) Human() *entity.Player {
	return that.human
}

func (that *GameController) Computer() *entity.Player {
	return that.computer
}

func (that *GameController) Score() *entity.Score {
	return that.score
}

func (that *GameController) Round() *Round {
	return that.round
}

// FirstToMove - the player who opens the current round.
func (that *GameController) FirstToMove() *entity.Player {
	return that.firstToMove
}

// CurrentPlayer - whose turn it is, nil once the round is finished.
func (that *GameController) CurrentPlayer() *entity.Player {
	return that.playerByMark(that.round.Turn)
}

// PlayRound alternates turns until the round is finished, then updates the score.
func (that *GameController) PlayRound(ctx context.Context) (*Round, error) {
	if that.round.IsFinished() {
		return nil, apperror.ErrRoundFinished
	}

	that.showBoard()

	for !that.round.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		player := that.CurrentPlayer()

		position, err := that.choosePosition(ctx, player)
		if err != nil {
			return nil, err
		}

		if err = that.round.MakeTurn(player.Mark, position); err != nil {
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}

		that.logger.Debug("turn made", "player", player.Name, "position", position)

		if !that.round.IsFinished() && !that.CurrentPlayer().IsComputer() {
			that.showBoard()
		}
	}

	that.rounds++

	winner := that.playerByMark(that.round.Winner)
	if winner != nil {
		that.score.RecordWin(winner.ID)
	}

	that.showRoundResult(winner)
	that.showScore()

	that.logger.Debug("round finished", "round", that.rounds, "winner", that.round.Winner)

	return that.round, nil
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

		if _, err := that.console.PromptLine(ctx, that.text("common.continue", nil)); err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		that.NextRound()
	}

	that.console.Highlight(that.text("ttt.game_over", nil))
	that.console.Say(that.text("common.game_winner", map[string]any{"Threshold": that.threshold, "Name": winner.Name}))
	that.console.Say("")

	that.logger.Info("game finished", "winner", winner.Name, "rounds", that.rounds)

	return entity.NewRecord(entity.GameTicTacToe, winner, []*entity.Player{that.human, that.computer}, that.score, that.rounds), nil
}

// NextRound clears the board and hands the opening move to the other player.
func (that *GameController) NextRound() {
	that.firstToMove = that.opponentOf(that.firstToMove)
	that.round = NewRound(that.firstToMove.Mark)
}

// Reset starts a new game: zero score, empty board, human moves first.
func (that *GameController) Reset() {
	that.score.Reset()
	that.rounds = 0
	that.firstToMove = that.human
	that.round = NewRound(that.human.Mark)

	that.console.Clear()
}

func (that *GameController) choosePosition(ctx context.Context, player *entity.Player) (int, error) {
	if player.IsComputer() {
		position, err := ChooseMove(that.round.Board, player.Mark, that.opponentOf(player).Mark, that.rng)
		if err != nil {
			return 0, fmt.Errorf("computer failed to choose a square: %w", err)
		}
		return position, nil
	}

	position, err := that.askSquare(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read square: %w", err)
	}

	return position, nil
}

func (that *GameController) askMark(ctx context.Context) (string, error) {
	that.console.Say(that.text("ttt.marker_question", nil))

	for {
		input, err := that.console.PromptLine(ctx, "")
		if err != nil {
			return "", err
		}

		mark := strings.ToUpper(strings.TrimSpace(input))
		if isMark(mark) {
			return mark, nil
		}

		that.console.Say(that.text("ttt.invalid_marker", nil))
	}
}

func (that *GameController) askSquare(ctx context.Context) (int, error) {
	empty := that.round.Board.EmptyPositions()
	that.console.Say(that.text("ttt.choose_square", map[string]any{"Squares": joinOr(empty, ", ", "or")}))

	for {
		input, err := that.console.PromptLine(ctx, "")
		if err != nil {
			return 0, err
		}

		if position, ok := parseSquare(input, that.round.Board); ok {
			return position, nil
		}

		that.console.Say(that.text("ttt.invalid_square", nil))
	}
}

// parseSquare accepts a plain number naming an empty square.
func parseSquare(input string, board *Board) (int, bool) {
	input = strings.TrimSpace(input)
	if strings.Contains(input, ".") || strings.HasPrefix(input, "0") {
		return 0, false
	}

	position, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}

	return position, board.IsEmpty(position)
}

func (that *GameController) showBoard() {
	that.console.Clear()
	that.console.Say(that.text("ttt.markers", map[string]any{
		"HumanMark":    that.human.Mark,
		"Computer":     that.computer.Name,
		"ComputerMark": that.computer.Mark,
	}))
	that.console.Say("")
	that.console.Say(that.text("ttt.first_to_move", map[string]any{"Name": that.firstToMove.Name}))
	that.console.Say("")
	that.console.Say(that.round.Board.String())
}

func (that *GameController) showRoundResult(winner *entity.Player) {
	that.showBoard()

	if winner == nil {
		that.console.Say(that.text("ttt.tie", nil))
		return
	}

	that.console.Say(that.text("ttt.round_winner", map[string]any{"Name": winner.Name}))
}

func (that *GameController) showScore() {
	that.console.Pause()
	that.console.Say("")
	that.console.Highlight(that.text("common.score_header", nil))
	for _, player := range []*entity.Player{that.human, that.computer} {
		that.console.Say(that.text("common.score_line", map[string]any{"Name": player.Name, "Count": that.score.CountFor(player.ID)}))
	}
	that.console.Say("")
}

func (that *GameController) playerByMark(mark string) *entity.Player {
	switch mark {
	case that.human.Mark:
		return that.human
	case that.computer.Mark:
		return that.computer
	default:
		return nil
	}
}

func (that *GameController) playerByID(id string) *entity.Player {
	if that.computer.ID == id {
		return that.computer
	}
	return that.human
}

func (that *GameController) opponentOf(player *entity.Player) *entity.Player {
	if player == that.human {
		return that.computer
	}
	return that.human
}

func (that *GameController) text(key string, data map[string]any) string {
	return that.messages.Text(key, data)
}

// joinOr - "1, 2 or 3".
func joinOr(positions []int, delimiter, word string) string {
	parts := make([]string, len(positions))
	for i, position := range positions {
		parts[i] = strconv.Itoa(position)
	}

	if len(parts) <= 1 {
		return strings.Join(parts, "")
	}

	return strings.Join(parts[:len(parts)-1], delimiter) + " " + word + " " + parts[len(parts)-1]
}

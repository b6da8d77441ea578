package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
)

type game interface {
	Name() string
	Welcome()
	Setup(ctx context.Context, humanName string) error
	PlayGame(ctx context.Context) (*entity.Record, error)
	Reset()
}

type prompter interface {
	PromptLine(ctx context.Context, message string) (string, error)
	ConfirmYesNo(ctx context.Context, message string) (bool, error)
	Say(message string)
	Highlight(message string)
	Clear()
}

type messages interface {
	Text(key string, data map[string]any) string
}

type historyRepo interface {
	Save(ctx context.Context, record *entity.Record) error
	Recent(ctx context.Context, game string, limit int) ([]*entity.Record, error)
}

// GameManager runs a whole session of one game: setup, repeated games and history.
type GameManager struct {
	logger   *slog.Logger
	console  prompter
	messages messages
	history  historyRepo

	recentLimit int
	games       map[string]game
}

func NewGameManager(logger *slog.Logger, console prompter, messages messages, history historyRepo, recentLimit int, games ...game) *GameManager {
	byName := make(map[string]game, len(games))
	for _, g := range games {
		byName[g.Name()] = g
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		console:  console,
		messages: messages,
		history:  history,

		recentLimit: recentLimit,
		games:       byName,
	}
}

// Run plays gameName until the player declines another game.
// End of input and a cancelled context end the session without an error.
func (that *GameManager) Run(ctx context.Context, gameName string) error {
	current, ok := that.games[gameName]
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownGame, gameName)
	}

	logger := that.logger.With("game", gameName)

	that.console.Clear()
	current.Welcome()
	that.showRecent(ctx, gameName)

	name, err := that.askName(ctx)
	if err != nil {
		return that.finish(logger, fmt.Errorf("failed to read name: %w", err))
	}

	if err = current.Setup(ctx, name); err != nil {
		return that.finish(logger, fmt.Errorf("failed to set up game: %w", err))
	}

	for games := 1; ; games++ {
		record, err := current.PlayGame(ctx)
		if record != nil {
			that.save(ctx, logger, record)
		}

		if err != nil {
			return that.finish(logger, fmt.Errorf("failed to play game: %w", err))
		}

		again, err := that.console.ConfirmYesNo(ctx, that.messages.Text("common.play_again", nil))
		if err != nil {
			return that.finish(logger, fmt.Errorf("failed to read answer: %w", err))
		}

		if !again {
			logger.Info("session finished", "games", games)
			break
		}

		current.Reset()
		that.console.Say(that.messages.Text("common.start_new_game", nil))
		that.console.Say("")
	}

	that.console.Say(that.messages.Text("common.goodbye", nil))

	return nil
}

func (that *GameManager) askName(ctx context.Context) (string, error) {
	for {
		name, err := that.console.PromptLine(ctx, that.messages.Text("common.ask_name", nil))
		if err != nil {
			return "", err
		}

		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}

		that.console.Say(that.messages.Text("common.empty_name", nil))
	}
}

func (that *GameManager) showRecent(ctx context.Context, gameName string) {
	if that.history == nil || that.recentLimit <= 0 {
		return
	}

	records, err := that.history.Recent(ctx, gameName, that.recentLimit)
	if err != nil {
		that.logger.Warn("failed to load recent results", "error", err)
		return
	}

	if len(records) == 0 {
		return
	}

	that.console.Say(that.messages.Text("common.recent_header", nil))
	for _, record := range records {
		that.console.Say(that.messages.Text("common.recent_line", map[string]any{"Winner": record.Winner, "Rounds": record.Rounds}))
	}
	that.console.Say("")
}

// save keeps the session going when the history backend fails.
func (that *GameManager) save(ctx context.Context, logger *slog.Logger, record *entity.Record) {
	if that.history == nil {
		return
	}

	if err := that.history.Save(ctx, record); err != nil {
		logger.Error("failed to save record", "record", record.ID, "error", err)
		return
	}

	logger.Debug("record saved", "record", record.ID, "winner", record.Winner)
}

func (that *GameManager) finish(logger *slog.Logger, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		logger.Info("session interrupted", "reason", err)
		that.console.Say("")
		that.console.Say(that.messages.Text("common.goodbye", nil))

		return nil
	}

	return err
}

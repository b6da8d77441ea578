package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/terminal-games/internal/config"
	"github.com/rocketscienceinc/terminal-games/internal/msgcat"
	"github.com/rocketscienceinc/terminal-games/internal/pkg"
	"github.com/rocketscienceinc/terminal-games/internal/repository"
	"github.com/rocketscienceinc/terminal-games/internal/repository/storage"
	"github.com/rocketscienceinc/terminal-games/internal/rps"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
	"github.com/rocketscienceinc/terminal-games/internal/usecase"
)

// RunApp - runs one session of gameName on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config, gameName string) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// a second signal kills the process
	go func() {
		<-ctx.Done()
		cancel()
	}()

	messages, err := msgcat.New(logger, conf.MessagesDir)
	if err != nil {
		return fmt.Errorf("could not load messages: %w", err)
	}

	history, closeHistory, err := newHistory(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeHistory(); err != nil {
			log.Error("could not close history storage", "error", err)
		}
	}()

	term := console.New(os.Stdin, os.Stdout,
		console.WithPace(conf.Pace),
		console.WithRetryText(messages.Text("common.yes_or_no", nil)),
	)
	rng := pkg.NewRandom(conf.Seed)

	manager := usecase.NewGameManager(logger, term, messages, history, conf.History.Limit,
		rps.NewGameController(logger, term, messages, rng, conf.WinThreshold),
		tictactoe.NewGameController(logger, term, messages, rng, conf.WinThreshold),
	)

	log.Info("Starting session", "game", gameName, "threshold", conf.WinThreshold, "history", conf.History.Backend)

	if err = manager.Run(ctx, gameName); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

func newHistory(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.HistoryRepository, func() error, error) {
	if conf.History.Backend != config.BackendRedis {
		return repository.NewMemoryHistoryRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.History.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewHistoryRepository(logger, redisStorage.Connection), redisStorage.Close, nil
}

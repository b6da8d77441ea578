package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/terminal-games/internal"
	"github.com/rocketscienceinc/terminal-games/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the chosen game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logOutput := initLogOutput(conf)
	defer logOutput.Close()

	logger := initLogger(conf, logOutput)

	gameName := conf.Game
	if len(os.Args) > 1 {
		gameName = os.Args[1]
	}

	if err := app.RunApp(logger, conf, gameName); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize log output, stderr unless a log file is configured.
func initLogOutput(conf *config.Config) io.WriteCloser {
	if conf.LogFile == "" {
		return nopCloser{os.Stderr}
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file
}

// initialize logger.
func initLogger(conf *config.Config, output io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

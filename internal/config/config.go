package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Numeric defaults are set before reading so that an explicit zero in the file
// or the environment is kept.
const (
	defaultWinThreshold = 3
	defaultPace         = time.Second
	defaultHistoryLimit = 3
)

var (
	ErrInvalidThreshold = errors.New("win threshold must be positive")
	ErrInvalidPace      = errors.New("pace must not be negative")
	ErrInvalidBackend   = errors.New("unknown history backend")
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile      string        `yaml:"log-file" env:"LOG_FILE"`
	Game         string        `yaml:"game" env:"GAME" env-default:"rps"`
	WinThreshold int           `yaml:"win-threshold" env:"WIN_THRESHOLD"`
	Pace         time.Duration `yaml:"pace" env:"PACE"`
	Seed         int64         `yaml:"seed" env:"SEED" env-default:"0"`
	MessagesDir  string        `yaml:"messages-dir" env:"MESSAGES_DIR"`
	History      History       `yaml:"history"`
}

type History struct {
	Backend string `yaml:"backend" env:"HISTORY_BACKEND" env-default:"memory"`
	Limit   int    `yaml:"limit" env:"HISTORY_LIMIT"`
	Redis   Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load reads path when it exists and the environment otherwise.
// Variables from an optional .env file are loaded first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := newDefaults()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func newDefaults() *Config {
	return &Config{
		WinThreshold: defaultWinThreshold,
		Pace:         defaultPace,
		History: History{
			Limit: defaultHistoryLimit,
		},
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) validate() error {
	if that.WinThreshold < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, that.WinThreshold)
	}

	if that.Pace < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPace, that.Pace)
	}

	if that.History.Backend != BackendMemory && that.History.Backend != BackendRedis {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, that.History.Backend)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

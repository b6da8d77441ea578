package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
)

// maxHistory - records kept per game in redis.
const maxHistory = 100

type HistoryRepository interface {
	Save(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, id string) (*entity.Record, error)
	// Recent returns up to limit records of game, newest first.
	Recent(ctx context.Context, game string, limit int) ([]*entity.Record, error)
}

type dbHistory struct {
	logger *slog.Logger
	client *redis.Client
}

func NewHistoryRepository(logger *slog.Logger, client *redis.Client) HistoryRepository {
	return &dbHistory{
		logger: logger.With("component", "history"),
		client: client,
	}
}

func (that *dbHistory) Save(ctx context.Context, record *entity.Record) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	historyKey := "history:" + record.Game

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, "record:"+record.ID, recordJSON, 0)
		pipe.LPush(ctx, historyKey, record.ID)
		pipe.LTrim(ctx, historyKey, 0, maxHistory-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

func (that *dbHistory) GetByID(ctx context.Context, id string) (*entity.Record, error) {
	response, err := that.client.Get(ctx, "record:"+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get record by id: %w", err)
	}

	var record entity.Record
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

func (that *dbHistory) Recent(ctx context.Context, game string, limit int) ([]*entity.Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, "history:"+game, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	records := make([]*entity.Record, 0, len(ids))
	for _, id := range ids {
		record, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrRecordNotFound) {
			that.logger.Warn("history lists a missing record", "game", game, "record", id)
			continue
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

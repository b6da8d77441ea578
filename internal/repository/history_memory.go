package repository

import (
	"context"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
)

type memHistory struct {
	byID    map[string]*entity.Record
	ordered []*entity.Record
}

// NewMemoryHistoryRepository keeps records for the lifetime of the process.
func NewMemoryHistoryRepository() HistoryRepository {
	return &memHistory{byID: make(map[string]*entity.Record)}
}

func (that *memHistory) Save(_ context.Context, record *entity.Record) error {
	stored := *record
	that.byID[record.ID] = &stored
	that.ordered = append(that.ordered, &stored)

	return nil
}

func (that *memHistory) GetByID(_ context.Context, id string) (*entity.Record, error) {
	record, ok := that.byID[id]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}

	return record, nil
}

func (that *memHistory) Recent(_ context.Context, game string, limit int) ([]*entity.Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	records := make([]*entity.Record, 0, limit)
	for i := len(that.ordered) - 1; i >= 0 && len(records) < limit; i-- {
		if that.ordered[i].Game == game {
			records = append(records, that.ordered[i])
		}
	}

	return records, nil
}

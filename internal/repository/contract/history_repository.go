package contract

import (
	"context"

	"neoyngpt-be/internal/entity"

	"github.com/google/uuid"
)

// HistoryFilter narrows a history listing. Zero values match everything.
type HistoryFilter struct {
	Pinned   *bool
	Category string
}

// IHistoryRepository is read-only: history is sample data and is never written by queries.
type IHistoryRepository interface {
	FindAll(ctx context.Context, filter HistoryFilter) ([]*entity.HistoryItem, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.HistoryItem, error)
}

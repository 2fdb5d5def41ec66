package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"neoyngpt-be/internal/entity"
	"neoyngpt-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type HistoryRepository struct {
	cache *cache.Cache
}

var _ contract.IHistoryRepository = &HistoryRepository{}

// NewHistoryRepository returns a repository holding the given items. Items never expire.
func NewHistoryRepository(items []*entity.HistoryItem) *HistoryRepository {
	c := cache.New(cache.NoExpiration, 0)
	for _, item := range items {
		c.Set(item.Id.String(), item, cache.NoExpiration)
	}
	return &HistoryRepository{cache: c}
}

// SampleHistory builds the sidebar's sample entries relative to now.
func SampleHistory(now time.Time) []*entity.HistoryItem {
	return []*entity.HistoryItem{
		{Id: uuid.New(), Query: "ML model architecture", AskedAt: now.Add(-2 * time.Hour), Pinned: true, Category: "ML"},
		{Id: uuid.New(), Query: "Neural networks basics", AskedAt: now.Add(-26 * time.Hour), Pinned: false, Category: "Neural Networks"},
		{Id: uuid.New(), Query: "Transformer architecture", AskedAt: now.Add(-50 * time.Hour), Pinned: true, Category: "Transformers"},
	}
}

// FindAll returns matching items, most recent first.
func (r *HistoryRepository) FindAll(ctx context.Context, filter contract.HistoryFilter) ([]*entity.HistoryItem, error) {
	result := make([]*entity.HistoryItem, 0, r.cache.ItemCount())
	for _, it := range r.cache.Items() {
		item := it.Object.(*entity.HistoryItem)
		if filter.Pinned != nil && item.Pinned != *filter.Pinned {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(item.Category, filter.Category) {
			continue
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].AskedAt.After(result[j].AskedAt)
	})
	return result, nil
}

// FindById returns nil, nil when the item does not exist.
func (r *HistoryRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.HistoryItem, error) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.HistoryItem), nil
	}
	return nil, nil
}

package service

import (
	"context"
	"time"

	"neoyngpt-be/internal/dto"
	"neoyngpt-be/internal/entity"
	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/internal/repository/contract"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type IHistoryService interface {
	GetAll(ctx context.Context, req *dto.GetHistoryRequest) ([]*dto.HistoryItemResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.HistoryItemResponse, error)
}

type historyService struct {
	repo contract.IHistoryRepository
	now  func() time.Time
}

func NewHistoryService(repo contract.IHistoryRepository, now func() time.Time) IHistoryService {
	if now == nil {
		now = time.Now
	}
	return &historyService{repo: repo, now: now}
}

func (s *historyService) GetAll(ctx context.Context, req *dto.GetHistoryRequest) ([]*dto.HistoryItemResponse, error) {
	items, err := s.repo.FindAll(ctx, contract.HistoryFilter{
		Pinned:   req.Pinned,
		Category: req.Category,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]*dto.HistoryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toHistoryResponse(item, now))
	}
	return result, nil
}

func (s *historyService) Show(ctx context.Context, id uuid.UUID) (*dto.HistoryItemResponse, error) {
	item, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("History item not found")
	}
	return toHistoryResponse(item, s.now()), nil
}

func toHistoryResponse(item *entity.HistoryItem, now time.Time) *dto.HistoryItemResponse {
	return &dto.HistoryItemResponse{
		Id:        item.Id,
		Query:     item.Query,
		Timestamp: RelativeTimestamp(item.AskedAt, now),
		Pinned:    item.Pinned,
		Category:  item.Category,
	}
}

// RelativeTimestamp renders sidebar times like "2 hours ago" or "Yesterday".
func RelativeTimestamp(then, now time.Time) string {
	age := now.Sub(then)
	if age >= 24*time.Hour && age < 48*time.Hour {
		return "Yesterday"
	}
	return humanize.RelTime(then, now, "ago", "from now")
}

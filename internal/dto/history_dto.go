package dto

import "github.com/google/uuid"

type GetHistoryRequest struct {
	Pinned   *bool  `query:"pinned"`
	Category string `query:"category" validate:"max=100"`
}

type HistoryItemResponse struct {
	Id        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	Timestamp string    `json:"timestamp"`
	Pinned    bool      `json:"pinned"`
	Category  string    `json:"category"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type HistoryItem struct {
	Id       uuid.UUID
	Query    string
	AskedAt  time.Time
	Pinned   bool
	Category string
}

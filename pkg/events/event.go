package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUERY_PROCESSED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const TypeQueryProcessed = "QUERY_PROCESSED"

// QueryProcessed describes the outcome of one query. It carries no answer text.
type QueryProcessed struct {
	QueryId      string    `json:"query_id"`
	ResponseType string    `json:"response_type"`
	ChartNodes   int       `json:"chart_nodes"`
	DurationMs   int64     `json:"duration_ms"`
	Error        string    `json:"error,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e QueryProcessed) EventType() string {
	return TypeQueryProcessed
}

func (e QueryProcessed) Payload() map[string]interface{} {
	p := map[string]interface{}{
		"query_id":      e.QueryId,
		"response_type": e.ResponseType,
		"chart_nodes":   e.ChartNodes,
		"duration_ms":   e.DurationMs,
	}
	if e.Error != "" {
		p["error"] = e.Error
	}
	return p
}

func (e QueryProcessed) Timestamp() time.Time {
	return e.OccurredAt
}

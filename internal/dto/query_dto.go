package dto

import (
	"neoyngpt-be/pkg/render"
	"neoyngpt-be/pkg/visual"

	"github.com/google/uuid"
)

// Response types of the presentation contract
const (
	ResponseTypeText     = "text"
	ResponseTypeError    = "error"
	ResponseTypeCombined = "combined"
)

// ProcessedResponse is what the client renders. Field names are part of the
// contract with the existing front end.
type ProcessedResponse struct {
	Type          string                 `json:"type"`
	TextContent   string                 `json:"textContent"`
	VisualContent *visual.VisualResponse `json:"visualContent,omitempty"`
	Error         string                 `json:"error,omitempty"`
}

func NewCombinedResponse(text string, v visual.VisualResponse) ProcessedResponse {
	return ProcessedResponse{
		Type:          ResponseTypeCombined,
		TextContent:   text,
		VisualContent: &v,
	}
}

func NewErrorResponse(message string) ProcessedResponse {
	return ProcessedResponse{
		Type:        ResponseTypeError,
		TextContent: "",
		Error:       message,
	}
}

func (r ProcessedResponse) IsError() bool {
	return r.Type == ResponseTypeError
}

type QueryRequest struct {
	Query string `json:"query" validate:"max=2000"`
}

type QueryResponse struct {
	QueryId uuid.UUID         `json:"query_id"`
	Query   string            `json:"query"`
	Result  ProcessedResponse `json:"result"`
	Views   *render.Views     `json:"views,omitempty"`
}

type VisualOnlyResponse struct {
	Query     string                `json:"query"`
	ChartType visual.ChartType      `json:"chart_type"`
	Concepts  []string              `json:"concepts"`
	Schema    visual.VisualResponse `json:"schema"`
	Views     *render.Views         `json:"views"`
}

package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"neoyngpt-be/internal/pkg/logger"
	"neoyngpt-be/internal/pkg/serverutils"
	"neoyngpt-be/internal/repository/memory"
	"neoyngpt-be/internal/service"
	"neoyngpt-be/pkg/visual"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTextService struct {
	text string
	err  error
}

func (s stubTextService) GenerateText(ctx context.Context, query string) (string, error) {
	return s.text, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(text service.ITextService) (*fiber.App, []byte) {
	gen := visual.NewVisualizer(visual.WithRandomSource(visual.NewSeededSource(1)))
	qs := service.NewQueryService(text, gen, gen, nil, logger.NewNopLogger())

	sample := memory.SampleHistory(time.Now())
	hs := service.NewHistoryService(memory.NewHistoryRepository(sample), nil)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewQueryController(qs).RegisterRoutes(api)
	NewHistoryController(hs).RegisterRoutes(api)
	return app, []byte(sample[0].Id.String())
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestQueryEndpointCombined(t *testing.T) {
	app, _ := newTestApp(stubTextService{text: "Here are the steps."})

	status, env := do(t, app, http.MethodPost, "/api/query/v1", `{"query":"  How to bake bread  "}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var data struct {
		Query  string `json:"query"`
		Result struct {
			Type          string                `json:"type"`
			TextContent   string                `json:"textContent"`
			VisualContent visual.VisualResponse `json:"visualContent"`
		} `json:"result"`
		Views struct {
			Diagram struct {
				Edges []string `json:"edges"`
			} `json:"diagram"`
		} `json:"views"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "How to bake bread", data.Query)
	assert.Equal(t, "combined", data.Result.Type)
	assert.Equal(t, "Here are the steps.", data.Result.TextContent)
	assert.Len(t, data.Result.VisualContent.Nodes, 2)
	assert.Equal(t, []string{"bake → bread"}, data.Views.Diagram.Edges)
}

func TestQueryEndpointErrorResultIsStill200(t *testing.T) {
	app, _ := newTestApp(stubTextService{text: "   "})

	status, env := do(t, app, http.MethodPost, "/api/query/v1", `{"query":"   "}`)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Query cannot be empty", env.Message)
	assert.Contains(t, string(env.Data), `"type":"error"`)
	assert.NotContains(t, string(env.Data), "visualContent")
}

func TestQueryEndpointRejectsBadInput(t *testing.T) {
	app, _ := newTestApp(stubTextService{text: "ok"})

	status, env := do(t, app, http.MethodPost, "/api/query/v1", `{"query":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", env.Message)

	long := strings.Repeat("a", 2001)
	status, env = do(t, app, http.MethodPost, "/api/query/v1", `{"query":"`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "query must be at most 2000 characters", env.Message)
}

func TestVisualEndpoint(t *testing.T) {
	app, _ := newTestApp(stubTextService{})

	status, env := do(t, app, http.MethodPost, "/api/query/v1/visual", `{"query":"Compare cats vs dogs"}`)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		ChartType string   `json:"chart_type"`
		Concepts  []string `json:"concepts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "comparison", data.ChartType)
	assert.Equal(t, []string{"compare", "cats", "vs", "dogs"}, data.Concepts)

	status, env = do(t, app, http.MethodPost, "/api/query/v1/visual", `{"query":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Query cannot be empty", env.Message)
}

func TestHistoryEndpoints(t *testing.T) {
	app, firstId := newTestApp(stubTextService{})

	status, env := do(t, app, http.MethodGet, "/api/history/v1?pinned=true", "")
	require.Equal(t, http.StatusOK, status)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)

	status, env = do(t, app, http.MethodGet, "/api/history/v1/"+string(firstId), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "ML model architecture")

	status, _ = do(t, app, http.MethodGet, "/api/history/v1/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = do(t, app, http.MethodGet, "/api/history/v1/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "History item not found", env.Message)
}

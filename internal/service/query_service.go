package service

import (
	"context"
	"strings"
	"time"

	"neoyngpt-be/internal/dto"
	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/internal/pkg/logger"
	"neoyngpt-be/internal/tracer"
	"neoyngpt-be/pkg/events"
	"neoyngpt-be/pkg/render"
	"neoyngpt-be/pkg/visual"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

type IQueryService interface {
	// Process runs the text and visual branches and merges them all-or-nothing.
	Process(ctx context.Context, query string) dto.ProcessedResponse
	// Query is Process plus an id and pre-rendered views for the HTTP API.
	Query(ctx context.Context, query string) *dto.QueryResponse
	// Visualize runs only the heuristic visual path.
	Visualize(ctx context.Context, query string) *dto.VisualOnlyResponse
}

type queryService struct {
	textService ITextService
	visualGen   visual.Generator
	analyzer    *visual.Visualizer
	publisher   IPublisherService
	logger      logger.ILogger
}

// NewQueryService wires the orchestrator. publisher may be nil.
func NewQueryService(
	textService ITextService,
	visualGen visual.Generator,
	analyzer *visual.Visualizer,
	publisher IPublisherService,
	log logger.ILogger,
) IQueryService {
	return &queryService{
		textService: textService,
		visualGen:   visualGen,
		analyzer:    analyzer,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *queryService) Process(ctx context.Context, query string) dto.ProcessedResponse {
	return s.process(ctx, uuid.New(), query)
}

func (s *queryService) Query(ctx context.Context, query string) *dto.QueryResponse {
	id := uuid.New()
	result := s.process(ctx, id, query)
	return &dto.QueryResponse{
		QueryId: id,
		Query:   query,
		Result:  result,
		Views:   render.Render(result.VisualContent),
	}
}

func (s *queryService) Visualize(ctx context.Context, query string) *dto.VisualOnlyResponse {
	analysis := s.analyzer.Analyze(query)
	return &dto.VisualOnlyResponse{
		Query:     query,
		ChartType: analysis.ChartType,
		Concepts:  analysis.Concepts,
		Schema:    analysis.Schema,
		Views:     render.Render(&analysis.Schema),
	}
}

func (s *queryService) process(ctx context.Context, id uuid.UUID, query string) dto.ProcessedResponse {
	ctx, span := tracer.Tracer("query-service").Start(ctx, "QueryService.Process")
	defer span.End()
	span.SetAttributes(attribute.String("query.id", id.String()))

	start := time.Now()

	if strings.TrimSpace(query) == "" {
		err := apperror.NewValidationError("Query cannot be empty")
		span.SetStatus(codes.Error, err.Error())
		return s.finish(ctx, id, start, dto.NewErrorResponse(err.Error()))
	}

	var (
		text   string
		schema visual.VisualResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		text, err = s.textService.GenerateText(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		schema, err = s.visualGen.Generate(gctx, query)
		return err
	})

	// A failure in either branch discards the other branch's result.
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("QueryService", "Query failed", map[string]interface{}{
			"query_id": id.String(),
			"error":    err.Error(),
		})
		return s.finish(ctx, id, start, dto.NewErrorResponse(err.Error()))
	}

	span.SetAttributes(
		attribute.Int("visual.nodes", len(schema.Nodes)),
		attribute.Int("visual.connections", len(schema.Connections)),
	)
	return s.finish(ctx, id, start, dto.NewCombinedResponse(text, schema))
}

func (s *queryService) finish(ctx context.Context, id uuid.UUID, start time.Time, res dto.ProcessedResponse) dto.ProcessedResponse {
	event := events.QueryProcessed{
		QueryId:      id.String(),
		ResponseType: res.Type,
		DurationMs:   time.Since(start).Milliseconds(),
		Error:        res.Error,
		OccurredAt:   time.Now(),
	}
	if res.VisualContent != nil {
		event.ChartNodes = len(res.VisualContent.Nodes)
	}

	s.logger.Info("QueryService", "Query processed", event.Payload())

	if s.publisher != nil {
		if err := s.publisher.PublishQueryProcessed(ctx, event); err != nil {
			s.logger.Warn("QueryService", "Failed to publish query event", map[string]interface{}{
				"query_id": id.String(),
				"error":    err.Error(),
			})
		}
	}

	return res
}

package service

import (
	"context"
	"errors"
	"testing"

	"neoyngpt-be/internal/dto"
	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/internal/pkg/logger"
	"neoyngpt-be/pkg/visual"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueryService(text ITextService, gen visual.Generator, pub IPublisherService) IQueryService {
	analyzer := visual.NewVisualizer(visual.WithRandomSource(visual.NewSeededSource(7)))
	return NewQueryService(text, gen, analyzer, pub, logger.NewNopLogger())
}

func TestQueryServiceCombined(t *testing.T) {
	text := &fakeTextService{text: "Cats and dogs differ."}
	schema := visual.GenerateComparison([]string{"cats", "dogs"}, visual.ComparisonLegacy)
	gen := &fakeGenerator{schema: schema}
	pub := &fakePublisher{}

	res := newTestQueryService(text, gen, pub).Process(context.Background(), "Compare cats vs dogs")

	assert.Equal(t, dto.ResponseTypeCombined, res.Type)
	assert.Equal(t, "Cats and dogs differ.", res.TextContent)
	require.NotNil(t, res.VisualContent)
	assert.Equal(t, schema, *res.VisualContent)
	assert.Empty(t, res.Error)

	require.Len(t, pub.events, 1)
	assert.Equal(t, dto.ResponseTypeCombined, pub.events[0].ResponseType)
	assert.Equal(t, 2, pub.events[0].ChartNodes)
}

func TestQueryServiceVisualFailureDiscardsText(t *testing.T) {
	text := &fakeTextService{text: "a perfectly good answer"}
	gen := &fakeGenerator{err: errors.New("visual exploded")}

	res := newTestQueryService(text, gen, nil).Process(context.Background(), "Tell me about rust")

	assert.Equal(t, dto.ResponseTypeError, res.Type)
	assert.Equal(t, "visual exploded", res.Error)
	assert.Empty(t, res.TextContent)
	assert.Nil(t, res.VisualContent)
	assert.Equal(t, 1, text.calls)
}

func TestQueryServiceTextFailureDiscardsVisual(t *testing.T) {
	text := &fakeTextService{err: apperror.NewConfigurationError("API key is not configured. Please check your environment variables.")}
	gen := &fakeGenerator{schema: visual.GenerateFlowchart([]string{"a", "b"})}

	res := newTestQueryService(text, gen, nil).Process(context.Background(), "How to bake bread")

	assert.True(t, res.IsError())
	assert.Equal(t, "API key is not configured. Please check your environment variables.", res.Error)
	assert.Empty(t, res.TextContent)
	assert.Nil(t, res.VisualContent)
}

func TestQueryServiceEmptyQueryNeverReachesBranches(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		text := &fakeTextService{text: "x"}
		gen := &fakeGenerator{}
		pub := &fakePublisher{}

		res := newTestQueryService(text, gen, pub).Process(context.Background(), q)

		assert.Equal(t, dto.ResponseTypeError, res.Type)
		assert.Equal(t, "Query cannot be empty", res.Error)
		assert.Equal(t, 0, text.calls)
		assert.Equal(t, 0, gen.calls)
		require.Len(t, pub.events, 1)
		assert.Equal(t, "Query cannot be empty", pub.events[0].Error)
	}
}

func TestQueryServicePublishFailureDoesNotFailQuery(t *testing.T) {
	text := &fakeTextService{text: "ok"}
	gen := &fakeGenerator{schema: visual.GenerateFlowchart(nil)}
	pub := &fakePublisher{err: errors.New("bus closed")}

	res := newTestQueryService(text, gen, pub).Process(context.Background(), "how to x")
	assert.Equal(t, dto.ResponseTypeCombined, res.Type)
}

func TestQueryServiceQueryRendersViews(t *testing.T) {
	text := &fakeTextService{text: "ok"}
	gen := &fakeGenerator{schema: visual.GenerateComparison([]string{"cats", "dogs"}, visual.ComparisonLegacy)}

	res := newTestQueryService(text, gen, nil).Query(context.Background(), "Compare cats vs dogs")

	assert.NotEmpty(t, res.QueryId)
	assert.Equal(t, "Compare cats vs dogs", res.Query)
	require.NotNil(t, res.Views)
	assert.Equal(t, []string{"cats"}, res.Views.Diagram.Left)
	assert.Equal(t, []string{"dogs"}, res.Views.Diagram.Right)

	failed := newTestQueryService(&fakeTextService{err: errors.New("boom")}, gen, nil).Query(context.Background(), "q")
	assert.Nil(t, failed.Views)
}

func TestQueryServiceVisualize(t *testing.T) {
	res := newTestQueryService(&fakeTextService{}, &fakeGenerator{}, nil).Visualize(context.Background(), "What are neural networks")

	assert.Equal(t, visual.ChartMindMap, res.ChartType)
	assert.Equal(t, []string{"are", "neural", "networks"}, res.Concepts)
	assert.Equal(t, "center", res.Schema.Nodes[0].Id)
	require.NotNil(t, res.Views)
}

func TestQueryServiceWithRealVisualizer(t *testing.T) {
	text := &fakeTextService{text: "Steps..."}
	svc := newTestQueryService(text, visual.NewVisualizer(), nil)

	res := svc.Process(context.Background(), "How to bake bread")
	require.Equal(t, dto.ResponseTypeCombined, res.Type)
	assert.Equal(t, visual.GenerateFlowchart([]string{"bake", "bread"}), *res.VisualContent)
}

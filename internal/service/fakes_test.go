package service

import (
	"context"
	"sync"

	"neoyngpt-be/pkg/events"
	"neoyngpt-be/pkg/llm"
	"neoyngpt-be/pkg/visual"
)

type fakeProvider struct {
	mu     sync.Mutex
	reply  string
	err    error
	calls  int
	prompt string
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompt = prompt
	return f.reply, f.err
}

type fakeTextService struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (f *fakeTextService) GenerateText(ctx context.Context, query string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.text, f.err
}

type fakeGenerator struct {
	mu     sync.Mutex
	schema visual.VisualResponse
	err    error
	calls  int
}

func (f *fakeGenerator) Generate(ctx context.Context, query string) (visual.VisualResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.schema, f.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.QueryProcessed
	err    error
}

func (f *fakePublisher) PublishQueryProcessed(ctx context.Context, event events.QueryProcessed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

type fakeForwarder struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakeForwarder) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeForwarder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

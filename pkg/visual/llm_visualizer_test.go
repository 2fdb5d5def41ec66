package visual

import (
	"context"
	"errors"
	"testing"

	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestLLMVisualizerParsesFencedJSON(t *testing.T) {
	p := &fakeProvider{reply: "```json\n{\"nodes\":[{\"id\":\"a\",\"label\":\"A\",\"type\":\"concept\"}],\"connections\":[]}\n```"}
	v := NewLLMVisualizer(p, 256)

	schema, err := v.Generate(context.Background(), "Tell me about rust")
	require.NoError(t, err)
	assert.Equal(t, []Node{{Id: "a", Label: "A", Type: "concept"}}, schema.Nodes)
	assert.NotNil(t, schema.Connections)
	assert.Contains(t, p.lastPrompt, `Query: "Tell me about rust"`)
}

func TestLLMVisualizerRejectsBadStructure(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty", "   "},
		{"not json", "here is your diagram"},
		{"missing connections", `{"nodes":[]}`},
		{"null nodes", `{"nodes":null,"connections":[]}`},
		{"wrong type", `{"nodes":"x","connections":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewLLMVisualizer(&fakeProvider{reply: tt.reply}, 0)
			_, err := v.Generate(context.Background(), "q")
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrProvider)
			assert.Contains(t, err.Error(), "Failed to generate visual representation")
		})
	}
}

func TestLLMVisualizerProviderErrors(t *testing.T) {
	v := NewLLMVisualizer(&fakeProvider{err: errors.New("timeout")}, 0)
	_, err := v.Generate(context.Background(), "q")
	assert.ErrorIs(t, err, apperror.ErrProvider)
	assert.Equal(t, "Failed to generate visual representation: timeout", err.Error())

	already := apperror.NewConfigurationError("no key")
	v = NewLLMVisualizer(&fakeProvider{err: already}, 0)
	_, err = v.Generate(context.Background(), "q")
	assert.Same(t, already, err)

	_, err = NewLLMVisualizer(nil, 0).Generate(context.Background(), "q")
	assert.ErrorIs(t, err, apperror.ErrConfiguration)
}

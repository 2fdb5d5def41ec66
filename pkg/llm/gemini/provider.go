package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"neoyngpt-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

var errNoPrompt = errors.New("gemini: history has no message to send")

// GeminiProvider talks to the Gemini API through the genai SDK. The client is
// created on first use so a missing key never dials out.
type GeminiProvider struct {
	apiKey   string
	endpoint string
	model    string
	timeout  time.Duration

	mu     sync.Mutex
	client *genai.Client
}

var _ llm.LLMProvider = &GeminiProvider{}

// NewGeminiProvider keeps the factory signature; an empty endpoint uses the SDK default.
func NewGeminiProvider(apiKey, endpoint, model string, timeout time.Duration) *GeminiProvider {
	return &GeminiProvider{
		apiKey:   apiKey,
		endpoint: endpoint,
		model:    model,
		timeout:  timeout,
	}
}

// Model is the default model used when no llm.WithModel override is given.
func (p *GeminiProvider) Model() string {
	return p.model
}

func (p *GeminiProvider) getClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(p.apiKey)}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	p.client = client
	return client, nil
}

// Close releases the underlying client, if one was created.
func (p *GeminiProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", llm.ErrMissingCredential
	}

	system, past, prompt, err := splitHistory(history)
	if err != nil {
		return "", err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	opts := llm.ApplyOptions(llm.Options{Model: p.model, Temperature: 0.7}, options...)

	model := client.GenerativeModel(opts.Model)
	model.SetCandidateCount(1)
	model.SetTemperature(float32(opts.Temperature))
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	cs.History = past

	resp, err := cs.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		// A blocked prompt or candidate is an empty answer, not a transport failure.
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", nil
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	return responseText(resp), nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}

// splitHistory maps provider-agnostic messages onto Gemini's chat model: system
// messages become the system instruction, the last non-system message is the
// prompt, and everything before it is chat history.
func splitHistory(history []llm.Message) (string, []*genai.Content, string, error) {
	var (
		system []string
		turns  []llm.Message
	)
	for _, msg := range history {
		if msg.Role == llm.RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		turns = append(turns, msg)
	}
	if len(turns) == 0 {
		return "", nil, "", errNoPrompt
	}

	past := make([]*genai.Content, 0, len(turns)-1)
	for _, msg := range turns[:len(turns)-1] {
		role := roleUser
		if msg.Role == llm.RoleAssistant || msg.Role == roleModel {
			role = roleModel
		}
		past = append(past, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(msg.Content)}})
	}

	return strings.Join(system, "\n"), past, turns[len(turns)-1].Content, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

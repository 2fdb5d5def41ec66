package breaker

import (
	"context"
	"errors"
	"log"
	"time"

	"neoyngpt-be/pkg/llm"

	"github.com/sony/gobreaker"
)

// Config holds circuit breaker thresholds
type Config struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// Trip when at least MinRequests were seen and this share of them failed
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// Provider fails fast while the wrapped provider keeps erroring. It never retries.
type Provider struct {
	next llm.LLMProvider
	cb   *gobreaker.CircuitBreaker
}

var _ llm.LLMProvider = &Provider{}

func New(next llm.LLMProvider, cfg Config) *Provider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("[WARN] Circuit breaker '%s' state changed from %v to %v", name, from, to)
		},
		// Caller-side problems say nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, llm.ErrMissingCredential) ||
				errors.Is(err, context.Canceled)
		},
	})
	return &Provider{next: next, cb: cb}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	res, err := p.cb.Execute(func() (interface{}, error) {
		return p.next.Chat(ctx, history, options...)
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	res, err := p.cb.Execute(func() (interface{}, error) {
		return p.next.Generate(ctx, prompt, options...)
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

// State exposes the breaker state for health reporting.
func (p *Provider) State() gobreaker.State {
	return p.cb.State()
}

package aigateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/academy-functions/internal/config"
)

var (
	ErrNotConfigured = errors.New("AI gateway is not configured")
	ErrEmptyResponse = errors.New("empty response from model")
)

// Gateway sends one system+user prompt pair to a language model and returns
// the raw text of its answer.
type Gateway interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

func New(ctx context.Context, cfg config.AIConfig) (Gateway, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiGateway(ctx, cfg)
	case "chat":
		return NewChatGateway(ctx, cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

type unavailable struct{}

// Unavailable returns a Gateway whose every call fails with ErrNotConfigured,
// so AI routes can answer 503 instead of the process refusing to start.
func Unavailable() Gateway {
	return unavailable{}
}

func (unavailable) Complete(ctx context.Context, system, user string) (string, error) {
	return "", ErrNotConfigured
}

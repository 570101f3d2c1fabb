package aigateway

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/saulo-duarte/academy-functions/internal/config"
)

type geminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, cfg config.AIConfig) (Gateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGateway{client: client, model: cfg.Model}, nil
}

func (g *geminiGateway) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIGATEWAY] raw gemini response:\n%s", raw)
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saulo-duarte/academy-functions/internal/aigateway"
	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/quiz"
)

var (
	ErrGateway      = errors.New("AI gateway request failed")
	ErrInvalidTopic = errors.New("topic rejected by model")
	ErrNoQuestions  = errors.New("model returned no usable questions")
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
}

type service struct {
	gateway aigateway.Gateway
	shuffle func(quiz.Question) quiz.Question
}

func NewService(gateway aigateway.Gateway) Service {
	return &service{gateway: gateway, shuffle: quiz.Shuffle}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	log := config.WithContext(ctx)

	raw, err := s.gateway.Complete(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	generated, err := decodeGenerated(raw)
	if errors.Is(err, ErrInvalidTopic) {
		return nil, err
	}
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] could not decode model output:\n%s", raw)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	limit := clampCount(req.Count)
	out := make([]Question, 0, limit)
	for _, g := range generated {
		if len(out) == limit {
			break
		}
		q, ok := s.toQuestion(req, g)
		if !ok {
			log.WithField("question", g.Question).Warn("[AIQUIZ] dropping question without a resolvable answer")
			continue
		}
		out = append(out, q)
	}

	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	log.Infof("[AIQUIZ] generated %d questions", len(out))
	return out, nil
}

func (s *service) toQuestion(req QuestionRequest, g generatedQuestion) (Question, bool) {
	text := strings.TrimSpace(g.Question)
	if text == "" || len(g.Options) < 2 {
		return Question{}, false
	}

	correct := answerIndex(g.CorrectAnswer, g.Options)
	if correct == quiz.NoAnswer {
		return Question{}, false
	}

	options := make([]string, len(g.Options))
	for i, opt := range g.Options {
		options[i] = stripLabel(opt)
	}

	shuffled := s.shuffle(quiz.NewQuestion(text, options, correct))

	return Question{
		ID:           uuid.NewString(),
		Topic:        firstNonEmpty(g.Topic, req.Topic),
		Difficulty:   firstNonEmpty(g.Difficulty, req.Difficulty, defaultDifficulty),
		Question:     shuffled.Question,
		Options:      shuffled.Options,
		CorrectIndex: shuffled.CorrectIndex,
		Explanation:  g.Explanation,
	}, true
}

// decodeGenerated accepts either {"questions": [...]} or a bare array.
func decodeGenerated(raw string) ([]generatedQuestion, error) {
	clean := aigateway.CleanJSON(raw)
	if strings.HasPrefix(clean, "[") {
		var list []generatedQuestion
		if err := aigateway.DecodeJSON(clean, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var payload generatedPayload
	if err := aigateway.DecodeJSON(clean, &payload); err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTopic, payload.Error)
	}
	return payload.Questions, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

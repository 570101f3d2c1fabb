package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/academy-functions/internal/aigateway"
	"github.com/saulo-duarte/academy-functions/internal/config"
)

var ErrGateway = errors.New("AI gateway request failed")

const (
	fallbackScore    = 50
	fallbackCriteria = 5.0
)

type Service interface {
	ScoreApplication(ctx context.Context, req ApplicationRequest) (*ApplicationScore, error)
	EvaluatePitch(ctx context.Context, req PitchRequest) (*PitchEvaluation, error)
}

type service struct {
	gateway aigateway.Gateway
	repo    Repository
	now     func() time.Time
}

func NewService(gateway aigateway.Gateway, repo Repository) Service {
	return &service{gateway: gateway, repo: repo, now: time.Now}
}

func (s *service) ScoreApplication(ctx context.Context, req ApplicationRequest) (*ApplicationScore, error) {
	log := config.WithContext(ctx)

	raw, err := s.gateway.Complete(ctx, applicationSystemPrompt, buildApplicationPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	var out applicationOutput
	var result *ApplicationScore
	if err := aigateway.DecodeJSON(raw, &out); err != nil || out.Score == nil {
		log.WithError(err).Warn("[SCORING] unusable model output, using fallback application score")
		result = fallbackApplicationScore()
	} else {
		score := clampInt(int(math.Round(*out.Score)), 0, 100)
		result = &ApplicationScore{
			Score:          score,
			Recommendation: normalizeRecommendation(out.Recommendation, score),
			Strengths:      nonNil(out.Strengths),
			Concerns:       nonNil(out.Concerns),
			Summary:        out.Summary,
		}
	}

	if req.ApplicationID != "" {
		id, err := uuid.Parse(req.ApplicationID)
		if err != nil {
			return nil, fmt.Errorf("invalid application id: %w", err)
		}
		if err := s.repo.SaveScore(ctx, id, result, s.now()); err != nil {
			return nil, fmt.Errorf("save application score: %w", err)
		}
		result.ApplicationID = id.String()
		log.WithField("application_id", id).Info("[SCORING] application score saved")
	}

	return result, nil
}

func (s *service) EvaluatePitch(ctx context.Context, req PitchRequest) (*PitchEvaluation, error) {
	log := config.WithContext(ctx)

	raw, err := s.gateway.Complete(ctx, pitchSystemPrompt, buildPitchPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	var out pitchOutput
	if err := aigateway.DecodeJSON(raw, &out); err != nil || !out.hasScores() {
		log.WithError(err).Warn("[SCORING] unusable model output, using fallback pitch evaluation")
		return fallbackPitchEvaluation(), nil
	}

	c := PitchCriteria{
		Clarity:     criterion(out.Scores.Clarity),
		Market:      criterion(out.Scores.Market),
		Innovation:  criterion(out.Scores.Innovation),
		Feasibility: criterion(out.Scores.Feasibility),
	}

	overall := (c.Clarity + c.Market + c.Innovation + c.Feasibility) / 4
	if out.Overall != nil {
		overall = clampFloat(*out.Overall, 0, 10)
	}

	return &PitchEvaluation{
		Criteria:    c,
		Overall:     round1(overall),
		Feedback:    out.Feedback,
		Suggestions: nonNil(out.Suggestions),
	}, nil
}

func (o pitchOutput) hasScores() bool {
	s := o.Scores
	return s.Clarity != nil || s.Market != nil || s.Innovation != nil || s.Feasibility != nil
}

func fallbackApplicationScore() *ApplicationScore {
	return &ApplicationScore{
		Score:          fallbackScore,
		Recommendation: RecommendationReview,
		Strengths:      []string{},
		Concerns:       []string{},
		Summary:        "Automatic scoring was unavailable; this application needs a manual review.",
		Fallback:       true,
	}
}

func fallbackPitchEvaluation() *PitchEvaluation {
	return &PitchEvaluation{
		Criteria: PitchCriteria{
			Clarity:     fallbackCriteria,
			Market:      fallbackCriteria,
			Innovation:  fallbackCriteria,
			Feasibility: fallbackCriteria,
		},
		Overall:     fallbackCriteria,
		Feedback:    "Automatic evaluation was unavailable; a mentor will review this pitch.",
		Suggestions: []string{},
		Fallback:    true,
	}
}

// criterion treats a missing score as the neutral midpoint.
func criterion(v *float64) float64 {
	if v == nil {
		return fallbackCriteria
	}
	return round1(clampFloat(*v, 0, 10))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

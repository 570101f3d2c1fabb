package scoring

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type Repository interface {
	SaveScore(ctx context.Context, id uuid.UUID, score *ApplicationScore, scoredAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SaveScore(ctx context.Context, id uuid.UUID, score *ApplicationScore, scoredAt time.Time) error {
	feedback := datatypes.JSONMap{
		"strengths": score.Strengths,
		"concerns":  score.Concerns,
		"summary":   score.Summary,
		"fallback":  score.Fallback,
	}

	// map updates so a zero score is still written
	res := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_score":          score.Score,
			"ai_recommendation": string(score.Recommendation),
			"ai_feedback":       feedback,
			"ai_scored_at":      scoredAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

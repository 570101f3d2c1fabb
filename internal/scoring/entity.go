package scoring

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Application is the slice of the applications table the scorer writes to.
type Application struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AIScore          *int           `gorm:"column:ai_score" json:"ai_score"`
	AIRecommendation *string        `gorm:"column:ai_recommendation" json:"ai_recommendation"`
	AIFeedback       datatypes.JSON `gorm:"column:ai_feedback;type:jsonb" json:"ai_feedback"`
	AIScoredAt       *time.Time     `gorm:"column:ai_scored_at" json:"ai_scored_at"`
}

func (Application) TableName() string {
	return "applications"
}

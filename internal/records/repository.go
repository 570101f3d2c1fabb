package records

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidCategory = errors.New("invalid record category")
)

type Repository interface {
	Ping(ctx context.Context) error
	ListWithQuizzes(ctx context.Context, c Category) ([]Record, error)
	ReplaceQuizQuestions(ctx context.Context, c Category, id string, questions datatypes.JSON) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) ListWithQuizzes(ctx context.Context, c Category) ([]Record, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}

	var recs []Record
	if err := r.db.WithContext(ctx).
		Table(c.Table()).
		Select("id", "quiz_questions").
		Where("quiz_questions IS NOT NULL").
		Order("id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *repository) ReplaceQuizQuestions(ctx context.Context, c Category, id string, questions datatypes.JSON) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}

	res := r.db.WithContext(ctx).
		Table(c.Table()).
		Where("id = ?", id).
		Update("quiz_questions", questions)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

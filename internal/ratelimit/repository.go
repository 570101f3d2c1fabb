package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrNoDecision = errors.New("rate limit check returned no row")

type Limiter interface {
	Check(ctx context.Context, userID, action string) (*Decision, error)
}

type limiter struct {
	db       *gorm.DB
	capacity int
	window   time.Duration
}

func NewLimiter(db *gorm.DB, capacity int, window time.Duration) Limiter {
	capacity = max(capacity, 1)
	if window < time.Second {
		window = time.Second
	}
	return &limiter{db: db, capacity: capacity, window: window}
}

func (l *limiter) Check(ctx context.Context, userID, action string) (*Decision, error) {
	var rows []Decision
	err := l.db.WithContext(ctx).
		Raw("SELECT allowed, remaining, reset_at FROM check_ai_rate_limit(?, ?, ?, ?)",
			userID, action, l.capacity, int(l.window.Seconds())).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("check rate limit: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoDecision
	}
	return &rows[0], nil
}

package ratelimit

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/academy-functions/internal/config"
)

type RateLimitContainer struct {
	Limiter Limiter
}

func NewRateLimitContainer(db *gorm.DB, cfg config.RateLimitConfig) *RateLimitContainer {
	return &RateLimitContainer{
		Limiter: NewLimiter(db, cfg.Capacity, cfg.Window),
	}
}

// For returns the middleware guarding action.
func (c *RateLimitContainer) For(action string) func(http.Handler) http.Handler {
	return Middleware(c.Limiter, action)
}

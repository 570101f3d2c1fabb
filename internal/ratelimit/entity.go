package ratelimit

import "time"

// Decision is one row returned by check_ai_rate_limit.
type Decision struct {
	Allowed   bool      `gorm:"column:allowed" json:"allowed"`
	Remaining int       `gorm:"column:remaining" json:"remaining"`
	ResetAt   time.Time `gorm:"column:reset_at" json:"reset_at"`
}

// RetryAfter is how long a denied caller should wait, never less than a second.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	wait := d.ResetAt.Sub(now)
	if wait < time.Second {
		return time.Second
	}
	return wait
}

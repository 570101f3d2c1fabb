package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/academy-functions/internal/auth"
	"github.com/saulo-duarte/academy-functions/internal/config"
)

// Middleware spends one token of action for the authenticated user. It must
// run after auth.AuthMiddleware. A limiter failure rejects the request.
func Middleware(l Limiter, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			claims, err := auth.GetUserClaimsFromContext(r.Context())
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			d, err := l.Check(r.Context(), claims.UserID, action)
			if err != nil {
				log.WithError(err).WithField("action", action).Error("Rate limit check failed")
				http.Error(w, "rate limiter unavailable", http.StatusServiceUnavailable)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			if !d.Allowed {
				retry := d.RetryAfter(time.Now())
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
				log.WithFields(logrus.Fields{
					"user_id": claims.UserID,
					"action":  action,
				}).Warn("AI rate limit exceeded")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

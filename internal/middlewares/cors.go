package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors builds the CORS handler shared by every route. Browsers call the
// functions straight from the platform front end, so preflights must succeed
// before auth runs.
func Cors(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "X-Client-Info", "Apikey"},
		ExposedHeaders:   []string{"Retry-After", "X-RateLimit-Remaining"},
		AllowCredentials: !allowsAny(origins),
		MaxAge:           300,
	})
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

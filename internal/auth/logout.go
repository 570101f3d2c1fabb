package auth

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/academy-functions/internal/config"
)

const sessionCookie = "jwt"

// Handler ends browser sessions. The JWT itself stays valid until it
// expires; logging out only drops the cookie.
type Handler struct {
	cookieDomain string
	secure       bool
}

func NewHandler(cookieDomain string, secure bool) *Handler {
	return &Handler{cookieDomain: cookieDomain, secure: secure}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	// cross-site cookies need SameSite=None, which browsers only accept with Secure
	sameSite := http.SameSiteLaxMode
	if h.secure {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	})

	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if claims, err := ValidateJWT(c.Value); err == nil {
			log = log.WithField("user_id", claims.UserID)
		}
	}
	log.Info("Session cookie cleared")

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

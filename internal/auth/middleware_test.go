package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/academy-functions/internal/auth"
)

func claimsEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		require.NoError(t, err)
		_, _ = w.Write([]byte(claims.UserID))
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth.Init(testSecret)
	h := auth.AuthMiddleware(claimsEcho(t))

	token, err := auth.GenerateJWT(testUserID, "student", time.Minute)
	require.NoError(t, err)

	t.Run("BearerHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testUserID, rec.Body.String())
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	auth.Init(testSecret)
	h := auth.AuthMiddleware(auth.RequireRole(auth.RoleAdmin)(claimsEcho(t)))

	for _, tc := range []struct {
		role string
		want int
	}{
		{auth.RoleAdmin, http.StatusOK},
		{"student", http.StatusForbidden},
	} {
		t.Run(tc.role, func(t *testing.T) {
			token, err := auth.GenerateJWT(testUserID, tc.role, time.Minute)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}

	t.Run("NoClaims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		auth.RequireRole(auth.RoleAdmin)(claimsEcho(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

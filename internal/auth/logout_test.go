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

func TestLogout(t *testing.T) {
	auth.Init(testSecret)

	t.Run("Secure", func(t *testing.T) {
		token, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		rec := httptest.NewRecorder()
		auth.NewHandler(".academy.example", true).Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"logout successful"}`, rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "jwt", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, "academy.example", cookies[0].Domain)
		assert.True(t, cookies[0].MaxAge < 0)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
	})

	t.Run("LocalHTTP", func(t *testing.T) {
		rec := httptest.NewRecorder()
		auth.NewHandler("", false).Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.False(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})
}

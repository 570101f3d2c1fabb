package reshuffle_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/academy-functions/internal/auth"
	"github.com/saulo-duarte/academy-functions/internal/records"
	"github.com/saulo-duarte/academy-functions/internal/reshuffle"
)

type stubService struct {
	summary *reshuffle.Summary
	err     error
	calls   int
}

func (s *stubService) Run(ctx context.Context) (*reshuffle.Summary, error) {
	s.calls++
	return s.summary, s.err
}

func TestShuffleQuizzesHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubService{summary: &reshuffle.Summary{
			Categories: map[records.Category]*reshuffle.CategoryStats{
				records.CategoryLessons: {Total: 3, Updated: 2, Questions: 7},
			},
			TotalRecords:   3,
			TotalUpdated:   2,
			TotalQuestions: 7,
		}}
		rec := httptest.NewRecorder()
		reshuffle.NewHandler(svc).ShuffleQuizzes(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body reshuffle.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Shuffled 7 questions across 2 records", body.Message)
		require.NotNil(t, body.Stats)
		assert.Equal(t, 7, body.Stats.Categories[records.CategoryLessons].Questions)
	})

	t.Run("Failure", func(t *testing.T) {
		svc := &stubService{err: errors.New("storage unavailable: dial tcp")}
		rec := httptest.NewRecorder()
		reshuffle.NewHandler(svc).ShuffleQuizzes(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "storage unavailable: dial tcp", body["error"])
		assert.NotContains(t, body, "stats")
	})
}

func TestRoutes(t *testing.T) {
	auth.Init("reshuffle-test-secret-long-enough")
	svc := &stubService{summary: &reshuffle.Summary{Categories: map[records.Category]*reshuffle.CategoryStats{}}}
	router := reshuffle.Routes(reshuffle.NewHandler(svc))

	t.Run("PreflightWithoutAuth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NotAdmin", func(t *testing.T) {
		token, err := auth.GenerateJWT("user-1", "student", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin", func(t *testing.T) {
		token, err := auth.GenerateJWT("admin-1", auth.RoleAdmin, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, svc.calls)
	})
}

package aiquiz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/academy-functions/internal/aigateway"
	"github.com/saulo-duarte/academy-functions/internal/aiquiz"
)

type fakeGateway struct {
	out    string
	err    error
	system string
	user   string
}

func (f *fakeGateway) Complete(ctx context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.out, f.err
}

const generated = "```json\n" + `{
  "questions": [
    {
      "topic": "geography",
      "difficulty": "easy",
      "question": "What is the capital of France?",
      "options": ["A) Lisbon", "B) Madrid", "C) Paris", "D) Rome"],
      "correct_answer": "C",
      "explanation": "Paris has been the capital since 987."
    },
    {
      "question": "Which planet is known as the red planet?",
      "options": ["A) Venus", "B) Mars", "C) Jupiter", "D) Saturn"],
      "correct_answer": "B) Mars"
    },
    {
      "question": "Unresolvable",
      "options": ["A) x", "B) y"],
      "correct_answer": "F"
    }
  ]
}` + "\n```"

func TestGenerateQuestions(t *testing.T) {
	t.Run("ResolvesAndShufflesAnswers", func(t *testing.T) {
		gw := &fakeGateway{out: generated}
		svc := aiquiz.NewService(gw)

		for i := 0; i < 20; i++ {
			qs, err := svc.GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "general knowledge", Count: 5})
			require.NoError(t, err)
			require.Len(t, qs, 2)

			assert.Equal(t, "Paris", qs[0].Options[qs[0].CorrectIndex])
			assert.Equal(t, "Mars", qs[1].Options[qs[1].CorrectIndex])
			assert.ElementsMatch(t, []string{"Lisbon", "Madrid", "Paris", "Rome"}, qs[0].Options)
			assert.NotEmpty(t, qs[0].ID)
			assert.NotEqual(t, qs[0].ID, qs[1].ID)
			assert.Equal(t, "geography", qs[0].Topic)
			assert.Equal(t, "general knowledge", qs[1].Topic)
			assert.Equal(t, "medium", qs[1].Difficulty)
		}

		assert.Contains(t, gw.user, "Generate 5 multiple-choice questions")
		assert.Contains(t, gw.system, "correct_answer")
	})

	t.Run("BareArray", func(t *testing.T) {
		gw := &fakeGateway{out: `[{"question":"2+2?","options":["3","4"],"correct_answer":"B"}]`}
		qs, err := aiquiz.NewService(gw).GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "math"})
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, "4", qs[0].Options[qs[0].CorrectIndex])
	})

	t.Run("TruncatesToCount", func(t *testing.T) {
		gw := &fakeGateway{out: generated}
		qs, err := aiquiz.NewService(gw).GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "x", Count: 1})
		require.NoError(t, err)
		assert.Len(t, qs, 1)
	})

	t.Run("GatewayError", func(t *testing.T) {
		gw := &fakeGateway{err: errors.New("timeout")}
		_, err := aiquiz.NewService(gw).GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "x"})
		assert.ErrorIs(t, err, aiquiz.ErrGateway)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		gw := &fakeGateway{out: "Sure! Here are your questions."}
		_, err := aiquiz.NewService(gw).GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "x"})
		assert.ErrorIs(t, err, aiquiz.ErrGateway)
	})

	t.Run("RejectedTopic", func(t *testing.T) {
		gw := &fakeGateway{out: `{"error":"invalid topic, only educational content is allowed"}`}
		_, err := aiquiz.NewService(gw).GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "gossip"})
		assert.ErrorIs(t, err, aiquiz.ErrInvalidTopic)
	})

	t.Run("NothingUsable", func(t *testing.T) {
		gw := &fakeGateway{out: `{"questions":[{"question":"q","options":["a"],"correct_answer":"A"}]}`}
		_, err := aiquiz.NewService(gw).GenerateQuestions(context.Background(), aiquiz.QuestionRequest{Topic: "x"})
		assert.ErrorIs(t, err, aiquiz.ErrNoQuestions)
	})
}

func TestGenerateQuestionsHandler(t *testing.T) {
	post := func(h http.Handler, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		return rec
	}

	t.Run("Created", func(t *testing.T) {
		h := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(&fakeGateway{out: generated})))
		rec := post(h, `{"topic":"geography","difficulty":"easy","count":2}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"questions"`)
	})

	t.Run("ValidationError", func(t *testing.T) {
		h := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(&fakeGateway{out: generated})))
		rec := post(h, `{"topic":"  ","difficulty":"impossible"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "topic")
		assert.Contains(t, rec.Body.String(), "difficulty")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		h := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(&fakeGateway{out: generated})))
		assert.Equal(t, http.StatusBadRequest, post(h, `{`).Code)
	})

	t.Run("BadGateway", func(t *testing.T) {
		h := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(&fakeGateway{err: errors.New("boom")})))
		assert.Equal(t, http.StatusBadGateway, post(h, `{"topic":"go"}`).Code)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		h := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(aigateway.Unavailable())))
		assert.Equal(t, http.StatusServiceUnavailable, post(h, `{"topic":"go"}`).Code)
	})

	t.Run("RunsMiddlewares", func(t *testing.T) {
		block := func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			})
		}
		h := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(&fakeGateway{out: generated})), block)
		assert.Equal(t, http.StatusTooManyRequests, post(h, `{"topic":"go"}`).Code)
	})
}

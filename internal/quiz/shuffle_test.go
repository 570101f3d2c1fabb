package quiz_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/academy-functions/internal/quiz"
)

func sequence(picks ...int) func(int) int {
	i := 0
	return func(n int) int {
		p := picks[i]
		i++
		return p % n
	}
}

func TestShuffleKeepsAnswer(t *testing.T) {
	q := quiz.NewQuestion("Which letter?", []string{"A", "B", "C", "D"}, 2)

	t.Run("EveryPermutation", func(t *testing.T) {
		seen := map[string]bool{}
		for a := 0; a < 4; a++ {
			for b := 0; b < 3; b++ {
				for c := 0; c < 2; c++ {
					out := quiz.ShuffleWith(q, sequence(a, b, c))
					require.True(t, out.HasValidAnswer())
					assert.Equal(t, "C", out.Options[out.CorrectIndex])
					assert.ElementsMatch(t, q.Options, out.Options)
					seen[out.Options[0]+out.Options[1]+out.Options[2]+out.Options[3]] = true
				}
			}
		}
		assert.Len(t, seen, 24)
	})

	t.Run("RepeatedShuffles", func(t *testing.T) {
		cur := q
		for i := 0; i < 100; i++ {
			cur = quiz.Shuffle(cur)
			assert.Equal(t, "C", cur.Options[cur.CorrectIndex])
		}
	})

	t.Run("OriginalUntouched", func(t *testing.T) {
		quiz.ShuffleWith(q, sequence(0, 0, 0))
		assert.Equal(t, []string{"A", "B", "C", "D"}, q.Options)
		assert.Equal(t, 2, q.CorrectIndex)
	})
}

func TestShuffleShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		q    quiz.Question
	}{
		{name: "one option", q: quiz.NewQuestion("Q", []string{"only"}, 0)},
		{name: "no options", q: quiz.NewQuestion("Q", []string{}, 0)},
		{name: "answer out of range", q: quiz.NewQuestion("Q", []string{"a", "b", "c"}, 5)},
		{name: "no answer", q: quiz.NewQuestion("Q", []string{"a", "b", "c"}, quiz.NoAnswer)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := quiz.ShuffleWith(tt.q, func(int) int {
				t.Fatal("random source must not be used")
				return 0
			})
			assert.Equal(t, tt.q, out)
		})
	}
}

func TestShuffleAll(t *testing.T) {
	qs := []quiz.Question{
		quiz.NewQuestion("Q1", []string{"a", "b", "c"}, 0),
		quiz.NewQuestion("Q2", []string{"x", "y"}, 1),
		quiz.NewQuestion("Q3", []string{"solo"}, 0),
	}
	out := quiz.ShuffleAll(qs)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Options[out[0].CorrectIndex])
	assert.Equal(t, "y", out[1].Options[out[1].CorrectIndex])
	assert.Equal(t, qs[2], out[2])
}

func TestShuffleRewritesEveryAnswerAlias(t *testing.T) {
	raw := `{"question":"Q","options":["a","b","c","d"],"correctIndex":2,"correct":2,"correct_index":2}`
	var q quiz.Question
	require.NoError(t, json.Unmarshal([]byte(raw), &q))

	for a := 0; a < 4; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 2; c++ {
				out, err := json.Marshal(quiz.ShuffleWith(q, sequence(a, b, c)))
				require.NoError(t, err)

				var row struct {
					Options      []string `json:"options"`
					CorrectIndex *int     `json:"correctIndex"`
					CorrectSnake *int     `json:"correct_index"`
					Correct      *int     `json:"correct"`
				}
				require.NoError(t, json.Unmarshal(out, &row))
				for _, idx := range []*int{row.CorrectIndex, row.CorrectSnake, row.Correct} {
					require.NotNil(t, idx, string(out))
					assert.Equal(t, "c", row.Options[*idx], string(out))
				}
			}
		}
	}
}

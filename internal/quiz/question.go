package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	keyQuestion     = "question"
	keyOptions      = "options"
	keyValue        = "value"
	keyCorrectIndex = "correctIndex"
)

// correctKeys lists the accepted spellings of the answer pointer, in lookup order.
var correctKeys = []string{keyCorrectIndex, "correct_index", "correct"}

// NoAnswer marks a question whose stored record carries no answer pointer.
const NoAnswer = -1

// Question is a multiple-choice question as stored in the quiz_questions
// column of lessons, sprints and modules.
type Question struct {
	Question     string
	Options      []string
	CorrectIndex int

	// answerKeys are the JSON keys the answer pointer was read from; rows
	// sometimes carry more than one spelling and all of them are rewritten.
	answerKeys []string
	// Extra holds any other keys so rewriting a record does not lose them.
	Extra map[string]json.RawMessage
}

func NewQuestion(text string, options []string, correctIndex int) Question {
	return Question{Question: text, Options: options, CorrectIndex: correctIndex}
}

// HasValidAnswer reports whether CorrectIndex points into Options.
func (q Question) HasValidAnswer() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

func (q Question) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(q.Extra)+3)
	for k, v := range q.Extra {
		out[k] = v
	}
	out[keyQuestion] = q.Question
	out[keyOptions] = q.Options
	keys := q.answerKeys
	if len(keys) == 0 && q.CorrectIndex != NoAnswer {
		keys = []string{keyCorrectIndex}
	}
	for _, key := range keys {
		out[key] = q.CorrectIndex
	}
	return json.Marshal(out)
}

func (q *Question) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	parsed, ok := questionFromFields(fields)
	if !ok {
		return fmt.Errorf("quiz question requires %q text and %q list", keyQuestion, keyOptions)
	}
	*q = parsed
	return nil
}

// Kind tells which stored shape a StoredQuestion was decoded from.
type Kind int

const (
	KindMalformed Kind = iota
	KindPlain
	KindEnvelope
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindEnvelope:
		return "envelope"
	default:
		return "malformed"
	}
}

// StoredQuestion is one entry of a persisted quiz_questions array: either a
// plain question, a {"value": question} envelope, or something unusable.
type StoredQuestion struct {
	Kind     Kind
	Question Question
}

// UnmarshalJSON never fails on shape; unusable entries decode as KindMalformed.
func (s *StoredQuestion) UnmarshalJSON(b []byte) error {
	*s = StoredQuestion{Kind: KindMalformed}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return nil
	}

	if _, plain := fields[keyQuestion]; !plain {
		if inner, wrapped := fields[keyValue]; wrapped {
			var innerFields map[string]json.RawMessage
			if err := json.Unmarshal(inner, &innerFields); err != nil || innerFields == nil {
				return nil
			}
			if q, ok := questionFromFields(innerFields); ok {
				*s = StoredQuestion{Kind: KindEnvelope, Question: q}
			}
			return nil
		}
	}

	if q, ok := questionFromFields(fields); ok {
		*s = StoredQuestion{Kind: KindPlain, Question: q}
	}
	return nil
}

// Normalize unwraps envelopes and drops malformed entries.
func Normalize(entries []StoredQuestion) []Question {
	out := make([]Question, 0, len(entries))
	for _, e := range entries {
		if e.Kind == KindMalformed {
			continue
		}
		out = append(out, e.Question)
	}
	return out
}

// DecodeQuestions parses a quiz_questions payload and normalizes it. It
// returns an error only when the payload is not a JSON array.
func DecodeQuestions(raw []byte) ([]Question, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAnArray
	}
	var entries []StoredQuestion
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("decode quiz questions: %w", err)
	}
	return Normalize(entries), nil
}

func questionFromFields(fields map[string]json.RawMessage) (Question, bool) {
	var q Question

	rawText, ok := fields[keyQuestion]
	if !ok || json.Unmarshal(rawText, &q.Question) != nil || q.Question == "" {
		return Question{}, false
	}

	rawOptions, ok := fields[keyOptions]
	if !ok || json.Unmarshal(rawOptions, &q.Options) != nil || q.Options == nil {
		return Question{}, false
	}

	q.CorrectIndex = NoAnswer
	answerKey := make(map[string]bool, len(correctKeys))
	for _, key := range correctKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var idx int
		if err := json.Unmarshal(raw, &idx); err != nil {
			continue
		}
		// the first spelling found wins
		if len(q.answerKeys) == 0 {
			q.CorrectIndex = idx
		}
		q.answerKeys = append(q.answerKeys, key)
		answerKey[key] = true
	}

	for k, v := range fields {
		if k == keyQuestion || k == keyOptions || answerKey[k] {
			continue
		}
		if q.Extra == nil {
			q.Extra = make(map[string]json.RawMessage)
		}
		q.Extra[k] = v
	}
	return q, true
}

package reshuffle

import "github.com/saulo-duarte/academy-functions/internal/records"

// CategoryStats counts what happened to one table. Questions is the number of
// questions written back, including ones kept in place because they had fewer
// than two options or no usable answer pointer. Records whose write failed
// contribute nothing.
type CategoryStats struct {
	Total     int `json:"total"`
	Updated   int `json:"updated"`
	Failed    int `json:"failed"`
	Questions int `json:"questions"`
}

type Summary struct {
	Categories     map[records.Category]*CategoryStats `json:"categories"`
	TotalRecords   int                                 `json:"total_records"`
	TotalUpdated   int                                 `json:"total_updated"`
	TotalQuestions int                                 `json:"total_questions"`
}

func newSummary() *Summary {
	return &Summary{Categories: make(map[records.Category]*CategoryStats)}
}

func (s *Summary) add(c records.Category, st CategoryStats) {
	s.Categories[c] = &st
	s.TotalRecords += st.Total
	s.TotalUpdated += st.Updated
	s.TotalQuestions += st.Questions
}

type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Stats   *Summary `json:"stats,omitempty"`
	Error   string   `json:"error,omitempty"`
}

package scoring

type ApplicationRequest struct {
	ApplicationID string            `json:"application_id" validate:"omitempty,uuid"`
	ApplicantName string            `json:"applicant_name" validate:"notblank,max=200"`
	Program       string            `json:"program" validate:"max=200"`
	Motivation    string            `json:"motivation" validate:"notblank,max=10000"`
	Experience    string            `json:"experience" validate:"max=10000"`
	Goals         string            `json:"goals" validate:"max=10000"`
	Answers       map[string]string `json:"answers" validate:"max=30"`
}

type ApplicationScore struct {
	ApplicationID  string         `json:"application_id,omitempty"`
	Score          int            `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
	Strengths      []string       `json:"strengths"`
	Concerns       []string       `json:"concerns"`
	Summary        string         `json:"summary"`
	Fallback       bool           `json:"fallback"`
}

type PitchRequest struct {
	Title    string `json:"title" validate:"notblank,max=200"`
	Pitch    string `json:"pitch" validate:"notblank,max=20000"`
	Audience string `json:"audience" validate:"max=500"`
}

type PitchCriteria struct {
	Clarity     float64 `json:"clarity"`
	Market      float64 `json:"market"`
	Innovation  float64 `json:"innovation"`
	Feasibility float64 `json:"feasibility"`
}

type PitchEvaluation struct {
	Criteria    PitchCriteria `json:"criteria"`
	Overall     float64       `json:"overall"`
	Feedback    string        `json:"feedback"`
	Suggestions []string      `json:"suggestions"`
	Fallback    bool          `json:"fallback"`
}

// model output shapes; pointers tell "missing" apart from zero.
type applicationOutput struct {
	Score          *float64 `json:"score"`
	Recommendation string   `json:"recommendation"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Summary        string   `json:"summary"`
}

type pitchOutput struct {
	Scores struct {
		Clarity     *float64 `json:"clarity"`
		Market      *float64 `json:"market"`
		Innovation  *float64 `json:"innovation"`
		Feasibility *float64 `json:"feasibility"`
	} `json:"scores"`
	Overall     *float64 `json:"overall"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

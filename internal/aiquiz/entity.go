package aiquiz

// Question is a generated multiple-choice question after the correct answer
// has been moved to a random position.
type Question struct {
	ID           string   `json:"id"`
	Topic        string   `json:"topic"`
	Difficulty   string   `json:"difficulty"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// generatedQuestion is the shape the model is asked to return.
type generatedQuestion struct {
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type generatedPayload struct {
	Questions []generatedQuestion `json:"questions"`
	Error     string              `json:"error"`
}

type QuestionRequest struct {
	Topic      string `json:"topic" validate:"notblank,max=200"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int    `json:"count" validate:"omitempty,min=1,max=10"`
	Context    string `json:"context" validate:"max=4000"`
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}

package quiz

import "errors"

var ErrNotAnArray = errors.New("quiz_questions is not a JSON array")

package aiquiz

import (
	"strings"

	"github.com/saulo-duarte/academy-functions/internal/quiz"
)

// answerIndex resolves the model's answer ("C", "c)", "C) Paris" or the
// option text itself) to an option index.
func answerIndex(answer string, options []string) int {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return quiz.NoAnswer
	}

	if letter, ok := leadingLetter(answer); ok {
		idx := int(letter - 'A')
		if idx < len(options) {
			return idx
		}
	}

	for i, opt := range options {
		if strings.EqualFold(stripLabel(opt), stripLabel(answer)) {
			return i
		}
	}
	return quiz.NoAnswer
}

// leadingLetter accepts "C", "C)", "C." and "C) text".
func leadingLetter(s string) (byte, bool) {
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	if len(s) == 1 {
		return c, true
	}
	switch s[1] {
	case ')', '.', ':':
		return c, true
	}
	return 0, false
}

// stripLabel removes a leading "A) " style label so options read naturally
// once their positions change.
func stripLabel(opt string) string {
	opt = strings.TrimSpace(opt)
	if len(opt) >= 2 {
		if _, ok := leadingLetter(opt); ok && (opt[1] == ')' || opt[1] == '.') {
			return strings.TrimSpace(opt[2:])
		}
	}
	return opt
}

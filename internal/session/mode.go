package session

import "fmt"

// Mode selects how answer feedback is delivered.
type Mode string

const (
	// ModePractice reveals correctness and the explanation immediately.
	// The first answer to a question is final.
	ModePractice Mode = "practice"

	// ModeExam withholds all feedback until scoring. Answers may be
	// changed any number of times before submit.
	ModeExam Mode = "exam"
)

// ParseMode converts a persisted mode string back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePractice, ModeExam:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Valid reports whether m is one of the two known modes.
func (m Mode) Valid() bool {
	return m == ModePractice || m == ModeExam
}

// Label returns the mode name for display.
func (m Mode) Label() string {
	switch m {
	case ModePractice:
		return "Practice"
	case ModeExam:
		return "Exam"
	default:
		return string(m)
	}
}

package session

import (
	"errors"
	"fmt"

	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/store"
)

var (
	// ErrNoMode is returned when a session is started without a mode.
	ErrNoMode = errors.New("no mode selected")

	// ErrFinished is returned when a closed session is mutated.
	ErrFinished = errors.New("session already finished")
)

// State is the mutable state of one run through a quiz pack. It has exactly
// one mutator at a time (the active screen's update step); every mutation is
// followed by a progress write through the persistence bridge.
type State struct {
	Mode     Mode
	Index    int
	Answers  map[int]int
	Finished bool

	// Total is the pack length N, fixed for the session.
	Total int
}

// New creates a fresh session over a pack of total questions.
func New(mode Mode, total int) (*State, error) {
	if !mode.Valid() {
		return nil, ErrNoMode
	}
	if total < 1 {
		return nil, fmt.Errorf("empty question store")
	}
	return &State{
		Mode:    mode,
		Answers: make(map[int]int),
		Total:   total,
	}, nil
}

// Resume restores a session from a persisted progress record. Callers must
// have checked the record against the current pack with CanResume.
func Resume(rec *store.ProgressRecord) (*State, error) {
	mode, err := ParseMode(rec.Mode)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	answers := rec.Answers
	if answers == nil {
		answers = make(map[int]int)
	}
	if rec.Index < 0 || rec.Index >= rec.Total {
		return nil, fmt.Errorf("resume: index %d out of range [0,%d)", rec.Index, rec.Total)
	}
	return &State{
		Mode:    mode,
		Index:   rec.Index,
		Answers: answers,
		Total:   rec.Total,
	}, nil
}

// CanResume reports whether a persisted record is resumable against a pack of
// length total. Stale records (written for a different pack length) are not.
func CanResume(rec *store.ProgressRecord, total int) bool {
	return rec != nil && rec.Total == total
}

// Record stores the user's choice for the current question.
//
// In practice mode the first answer is final: recording over an existing
// answer is a silent no-op. In exam mode the latest answer wins. Recording
// for a non-current question, an out-of-range option, or a finished session
// is a programmer error.
func (s *State) Record(questionIndex, option int) error {
	if s.Finished {
		return ErrFinished
	}
	if questionIndex != s.Index {
		return fmt.Errorf("record: question %d is not current (at %d)", questionIndex, s.Index)
	}
	if option < 0 || option >= quiz.OptionCount {
		return fmt.Errorf("record: option %d out of range [0,%d)", option, quiz.OptionCount)
	}

	if s.Mode == ModePractice {
		if _, locked := s.Answers[questionIndex]; locked {
			return nil
		}
	}
	s.Answers[questionIndex] = option
	return nil
}

// Advance moves the current index by dir (+1 or -1). The boundary affordances
// belong to the caller; pushing past either edge is an error.
func (s *State) Advance(dir int) error {
	if s.Finished {
		return ErrFinished
	}
	if dir != 1 && dir != -1 {
		return fmt.Errorf("advance: invalid direction %d", dir)
	}
	next := s.Index + dir
	if next < 0 || next >= s.Total {
		return fmt.Errorf("advance: index %d out of range [0,%d)", next, s.Total)
	}
	s.Index = next
	return nil
}

// Finish closes the session to further edits. Scoring runs exactly once per
// session; a second Finish is an error.
func (s *State) Finish() error {
	if s.Finished {
		return ErrFinished
	}
	s.Finished = true
	return nil
}

// Answer returns the recorded option for question i, if any.
func (s *State) Answer(i int) (int, bool) {
	opt, ok := s.Answers[i]
	return opt, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *State) AnsweredCount() int {
	return len(s.Answers)
}

// AtFirst reports whether the current question is the first one.
func (s *State) AtFirst() bool {
	return s.Index == 0
}

// AtLast reports whether the current question is the last one.
func (s *State) AtLast() bool {
	return s.Index == s.Total-1
}

// Snapshot returns the progress record to persist for this state.
func (s *State) Snapshot() store.ProgressRecord {
	answers := make(map[int]int, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	return store.ProgressRecord{
		Index:   s.Index,
		Answers: answers,
		Mode:    string(s.Mode),
		Total:   s.Total,
	}
}

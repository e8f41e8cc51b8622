package session

import (
	"errors"
	"testing"

	"github.com/varunsridharan/quizdeck/internal/store"
)

func TestNew_RequiresMode(t *testing.T) {
	if _, err := New("", 4); !errors.Is(err, ErrNoMode) {
		t.Fatalf("New with empty mode: err = %v, want ErrNoMode", err)
	}
	if _, err := New("speedrun", 4); !errors.Is(err, ErrNoMode) {
		t.Fatalf("New with unknown mode: err = %v, want ErrNoMode", err)
	}

	st, err := New(ModePractice, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st.Index != 0 || len(st.Answers) != 0 || st.Finished {
		t.Errorf("fresh state = %+v, want index 0, no answers, not finished", st)
	}
}

func TestRecord_PracticeFirstAnswerIsFinal(t *testing.T) {
	st, _ := New(ModePractice, 3)

	if err := st.Record(0, 1); err != nil {
		t.Fatalf("first record: %v", err)
	}
	// Second call must be a no-op, not an error.
	if err := st.Record(0, 3); err != nil {
		t.Fatalf("repeat record: %v", err)
	}

	if got, _ := st.Answer(0); got != 1 {
		t.Errorf("answer = %d, want first recorded value 1", got)
	}
}

func TestRecord_ExamLatestAnswerWins(t *testing.T) {
	st, _ := New(ModeExam, 3)

	if err := st.Record(0, 1); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := st.Record(0, 3); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	if got, _ := st.Answer(0); got != 3 {
		t.Errorf("answer = %d, want latest value 3", got)
	}
}

func TestRecord_Preconditions(t *testing.T) {
	st, _ := New(ModeExam, 3)

	if err := st.Record(1, 0); err == nil {
		t.Error("recording a non-current question should fail")
	}
	if err := st.Record(0, 4); err == nil {
		t.Error("recording option 4 should fail")
	}
	if err := st.Record(0, -1); err == nil {
		t.Error("recording option -1 should fail")
	}

	st.Finished = true
	if err := st.Record(0, 0); !errors.Is(err, ErrFinished) {
		t.Errorf("recording after finish: err = %v, want ErrFinished", err)
	}
}

func TestAdvance_Boundaries(t *testing.T) {
	st, _ := New(ModePractice, 2)

	if !st.AtFirst() {
		t.Error("fresh state should be at first question")
	}
	if err := st.Advance(-1); err == nil {
		t.Error("advance(-1) at index 0 should fail")
	}

	if err := st.Advance(1); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !st.AtLast() {
		t.Error("state should be at last question")
	}
	if err := st.Advance(1); err == nil {
		t.Error("advance(+1) at last question should fail")
	}

	if err := st.Advance(-1); err != nil {
		t.Fatalf("advance back: %v", err)
	}
	if st.Index != 0 {
		t.Errorf("index = %d, want 0", st.Index)
	}
}

func TestFinish_RunsOnce(t *testing.T) {
	st, _ := New(ModeExam, 2)

	if err := st.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !st.Finished {
		t.Error("state should be finished")
	}
	if err := st.Finish(); !errors.Is(err, ErrFinished) {
		t.Errorf("second finish: err = %v, want ErrFinished", err)
	}
	if err := st.Advance(1); !errors.Is(err, ErrFinished) {
		t.Errorf("advance after finish: err = %v, want ErrFinished", err)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	st, _ := New(ModeExam, 5)
	_ = st.Record(0, 2)
	_ = st.Advance(1)
	_ = st.Record(1, 0)

	rec := st.Snapshot()
	if rec.Index != 1 || rec.Mode != "exam" || rec.Total != 5 {
		t.Errorf("snapshot = %+v", rec)
	}

	restored, err := Resume(&rec)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if restored.Index != st.Index || restored.Mode != st.Mode || restored.Total != st.Total {
		t.Errorf("restored = %+v, want %+v", restored, st)
	}
	for i, want := range st.Answers {
		if got, ok := restored.Answers[i]; !ok || got != want {
			t.Errorf("restored answer[%d] = %d (%v), want %d", i, got, ok, want)
		}
	}

	// Snapshot must be a copy, not an alias.
	rec.Answers[4] = 3
	if _, ok := st.Answer(4); ok {
		t.Error("mutating the snapshot leaked into session state")
	}
}

func TestCanResume_TotalMustMatch(t *testing.T) {
	rec := &store.ProgressRecord{Index: 2, Mode: "practice", Total: 5}

	if !CanResume(rec, 5) {
		t.Error("matching total should be resumable")
	}
	if CanResume(rec, 4) {
		t.Error("stale record (total 5 vs pack 4) should not be resumable")
	}
	if CanResume(nil, 5) {
		t.Error("absent record should not be resumable")
	}
}

func TestResume_RejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		rec  store.ProgressRecord
	}{
		{"unknown mode", store.ProgressRecord{Index: 0, Mode: "turbo", Total: 3}},
		{"index out of range", store.ProgressRecord{Index: 3, Mode: "exam", Total: 3}},
		{"negative index", store.ProgressRecord{Index: -1, Mode: "exam", Total: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resume(&tt.rec); err == nil {
				t.Errorf("Resume(%+v) should fail", tt.rec)
			}
		})
	}
}

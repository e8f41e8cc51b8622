package quizscreen

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/router"
	"github.com/varunsridharan/quizdeck/internal/screen"
	"github.com/varunsridharan/quizdeck/internal/session"
	"github.com/varunsridharan/quizdeck/internal/store"
)

type fakeProgress struct {
	rec    *store.ProgressRecord
	saves  int
	clears int
}

func (f *fakeProgress) Save(_ context.Context, rec store.ProgressRecord) error {
	f.rec = &rec
	f.saves++
	return nil
}

func (f *fakeProgress) Load(context.Context) (*store.ProgressRecord, error) {
	return f.rec, nil
}

func (f *fakeProgress) Clear(context.Context) error {
	f.rec = nil
	f.clears++
	return nil
}

type fakeResults struct {
	recs []store.ResultRecord
}

func (f *fakeResults) Append(_ context.Context, rec store.ResultRecord) error {
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeResults) List(context.Context, int) ([]store.ResultRecord, error) {
	return f.recs, nil
}

type stubStart struct{}

func (stubStart) Init() tea.Cmd                          { return nil }
func (s stubStart) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubStart) View(int, int) string                   { return "" }
func (stubStart) Title() string                          { return "stub" }

func testPack() *quiz.Pack {
	return &quiz.Pack{
		Title: "Test Quiz",
		Questions: []quiz.Question{
			{
				Text:        "First?",
				Options:     []string{"a1", "a2", "a3", "a4"},
				Correct:     0,
				Category:    "One",
				Explanation: "because",
			},
			{
				Text:        "Second?",
				Options:     []string{"b1", "b2", "b3", "b4"},
				Correct:     2,
				Category:    "Two",
				Explanation: "also because",
			},
		},
	}
}

func newTestScreen(t *testing.T, mode session.Mode) (*QuizScreen, *fakeProgress, *fakeResults) {
	t.Helper()
	st, err := session.New(mode, 2)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	progress := &fakeProgress{}
	results := &fakeResults{}
	q := New(testPack(), st, func() screen.Screen { return stubStart{} }, progress, results)
	return q, progress, results
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runMsg executes a returned command and feeds the message back in,
// returning the message for inspection.
func runMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestPracticeAnswerIsFinal(t *testing.T) {
	q, progress, _ := newTestScreen(t, session.ModePractice)

	q.Update(keyPress('b'))
	if got, ok := q.st.Answer(0); !ok || got != 1 {
		t.Fatalf("expected answer 1 recorded, got %d (ok=%v)", got, ok)
	}
	if progress.saves != 1 {
		t.Errorf("expected 1 save, got %d", progress.saves)
	}

	// Second answer is ignored: the question is locked.
	q.Update(keyPress('a'))
	if got, _ := q.st.Answer(0); got != 1 {
		t.Errorf("practice answer changed, got %d", got)
	}
	if progress.saves != 1 {
		t.Errorf("locked answer still saved, saves=%d", progress.saves)
	}
}

func TestExamAnswerOverwrites(t *testing.T) {
	q, _, _ := newTestScreen(t, session.ModeExam)

	q.Update(keyPress('a'))
	q.Update(keyPress('c'))

	if got, _ := q.st.Answer(0); got != 2 {
		t.Errorf("expected overwrite to 2, got %d", got)
	}
}

func TestNavigationClampsAtBounds(t *testing.T) {
	q, progress, _ := newTestScreen(t, session.ModeExam)

	q.Update(specialKey(tea.KeyLeft))
	if q.st.Index != 0 {
		t.Errorf("left at first question moved index to %d", q.st.Index)
	}
	if progress.saves != 0 {
		t.Errorf("clamped move still saved, saves=%d", progress.saves)
	}

	q.Update(specialKey(tea.KeyRight))
	if q.st.Index != 1 {
		t.Fatalf("expected index 1, got %d", q.st.Index)
	}

	q.Update(specialKey(tea.KeyRight))
	if q.st.Index != 1 {
		t.Errorf("right at last question moved index to %d", q.st.Index)
	}
}

func TestEnterRecordsCursorChoice(t *testing.T) {
	q, _, _ := newTestScreen(t, session.ModeExam)

	q.Update(keyPress('j'))
	q.Update(specialKey(tea.KeyEnter))

	if got, ok := q.st.Answer(0); !ok || got != 1 {
		t.Errorf("expected cursor choice 1 recorded, got %d (ok=%v)", got, ok)
	}
}

func TestSubmitWithUnansweredAsksConfirmation(t *testing.T) {
	q, progress, results := newTestScreen(t, session.ModeExam)

	q.Update(keyPress('a'))
	q.Update(specialKey(tea.KeyRight))

	// Second question left unanswered.
	_, cmd := q.Update(keyPress('s'))
	if cmd != nil {
		t.Fatal("expected no command while confirming")
	}
	if !q.confirmSubmit {
		t.Fatal("expected confirmation prompt")
	}

	// Declining keeps the session going.
	q.Update(keyPress('n'))
	if q.confirmSubmit || q.st.Finished {
		t.Fatal("decline should abort the submit")
	}

	// Confirming finishes and moves to results.
	q.Update(keyPress('s'))
	_, cmd = q.Update(keyPress('y'))
	msg := runMsg(t, cmd)
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if !q.st.Finished {
		t.Error("expected session finished")
	}
	if progress.clears != 1 {
		t.Errorf("expected progress cleared once, got %d", progress.clears)
	}
	if len(results.recs) != 1 {
		t.Fatalf("expected 1 result recorded, got %d", len(results.recs))
	}
	rec := results.recs[0]
	if rec.Score != 1 || rec.Total != 2 || rec.Percent != 50 {
		t.Errorf("unexpected result: score=%d total=%d percent=%d", rec.Score, rec.Total, rec.Percent)
	}
	if rec.SessionID == "" {
		t.Error("expected a session ID")
	}
}

func TestSubmitAllAnsweredSkipsConfirmation(t *testing.T) {
	q, _, results := newTestScreen(t, session.ModeExam)

	q.Update(keyPress('a'))
	q.Update(specialKey(tea.KeyRight))
	q.Update(keyPress('c'))

	_, cmd := q.Update(keyPress('s'))
	msg := runMsg(t, cmd)
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if results.recs[0].Score != 2 {
		t.Errorf("expected perfect score, got %d", results.recs[0].Score)
	}
}

func TestEscSavesAndExits(t *testing.T) {
	q, progress, _ := newTestScreen(t, session.ModeExam)

	q.Update(keyPress('a'))

	_, cmd := q.Update(specialKey(tea.KeyEscape))
	msg := runMsg(t, cmd)
	if _, ok := msg.(router.ResetScreenMsg); !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", msg)
	}
	if progress.rec == nil {
		t.Fatal("expected progress saved on exit")
	}
	if progress.rec.Answers[0] != 0 {
		t.Errorf("saved progress missing answer: %+v", progress.rec)
	}
}

func TestSubmitOnlyOnLastQuestion(t *testing.T) {
	q, _, _ := newTestScreen(t, session.ModeExam)

	_, cmd := q.Update(keyPress('s'))
	if cmd != nil || q.confirmSubmit {
		t.Error("submit should do nothing before the last question")
	}
}

package quizscreen

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/router"
	"github.com/varunsridharan/quizdeck/internal/scoring"
	"github.com/varunsridharan/quizdeck/internal/screen"
	"github.com/varunsridharan/quizdeck/internal/screens/results"
	"github.com/varunsridharan/quizdeck/internal/session"
	"github.com/varunsridharan/quizdeck/internal/store"
	"github.com/varunsridharan/quizdeck/internal/ui/components"
	"github.com/varunsridharan/quizdeck/internal/ui/layout"
)

// QuizScreen runs one session over the loaded pack: it presents the current
// question, records answers under the session's mode rules, and persists
// progress after every mutation.
type QuizScreen struct {
	pack         *quiz.Pack
	st           *session.State
	startFactory func() screen.Screen
	progress     store.ProgressRepo
	results      store.ResultRepo

	opts          components.OptionList
	confirmSubmit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over an active session state.
func New(pack *quiz.Pack, st *session.State, startFactory func() screen.Screen, progress store.ProgressRepo, results store.ResultRepo) *QuizScreen {
	q := &QuizScreen{
		pack:         pack,
		st:           st,
		startFactory: startFactory,
		progress:     progress,
		results:      results,
	}
	q.syncOptions()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return q.st.Mode.Label()
}

func (q *QuizScreen) QuizTitle() string {
	return q.pack.Title
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit anyway"},
			{Key: "N", Description: "Keep answering"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "↑↓/A-D", Description: "Answer"},
	}
	if !q.st.AtFirst() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if q.st.AtLast() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Save & exit"})
	return hints
}

// current returns the question at the session's current index.
func (q *QuizScreen) current() quiz.Question {
	return q.pack.Questions[q.st.Index]
}

// syncOptions rebuilds the option list from session state after the current
// index or the recorded answer changes.
func (q *QuizScreen) syncOptions() {
	question := q.current()
	opts := components.NewOptionList(question.Options, question.Correct)

	if chosen, ok := q.st.Answer(q.st.Index); ok {
		opts.Answered = true
		opts.Chosen = chosen
		opts.Cursor = chosen
		opts.ShowCorrectness = q.st.Mode == session.ModePractice
	}

	q.opts = opts
}

// saveProgress persists the session snapshot. Failures never interrupt the
// session; the in-memory state stays authoritative.
func (q *QuizScreen) saveProgress() {
	if err := q.progress.Save(context.Background(), q.st.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save progress: %v\n", err)
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}
	key := kmsg.String()

	if q.confirmSubmit {
		switch key {
		case "y", "Y":
			q.confirmSubmit = false
			return q.finish()
		case "n", "N", "esc":
			// Declining aborts with no state change.
			q.confirmSubmit = false
		}
		return q, nil
	}

	switch key {
	case "esc":
		return q.exit()

	case "left", "h":
		if !q.st.AtFirst() {
			return q.navigate(-1)
		}
		return q, nil

	case "right", "l":
		if !q.st.AtLast() {
			return q.navigate(1)
		}
		return q, nil

	case "s", "S":
		// Submit replaces next on the last question.
		if q.st.AtLast() {
			return q.submit()
		}
		return q, nil

	case "enter", " ":
		return q.record(q.opts.Cursor)

	case "a", "1":
		return q.record(0)
	case "b", "2":
		return q.record(1)
	case "c", "3":
		return q.record(2)
	case "d", "4":
		return q.record(3)
	}

	var cmd tea.Cmd
	q.opts, cmd = q.opts.Update(msg)
	return q, cmd
}

// navigate moves the current index and persists the new position.
func (q *QuizScreen) navigate(dir int) (screen.Screen, tea.Cmd) {
	if err := q.st.Advance(dir); err != nil {
		return q, nil
	}
	q.syncOptions()
	q.saveProgress()
	return q, nil
}

// record stores the chosen option for the current question.
func (q *QuizScreen) record(option int) (screen.Screen, tea.Cmd) {
	// Practice mode locks the question after the first answer: the
	// options are no longer interactive, so this input is dropped.
	if q.opts.Locked() {
		return q, nil
	}

	if err := q.st.Record(q.st.Index, option); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record answer: %v\n", err)
		return q, nil
	}
	q.syncOptions()
	q.saveProgress()
	return q, nil
}

// submit starts the finish flow, gating on unanswered questions.
func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	if q.st.AnsweredCount() < q.st.Total {
		q.confirmSubmit = true
		return q, nil
	}
	return q.finish()
}

// finish scores the session, closes it, clears the saved progress, and
// records the result in the history.
func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	if err := q.st.Finish(); err != nil {
		return q, nil
	}

	res := scoring.Compute(q.pack.Questions, q.st)

	ctx := context.Background()
	if err := q.progress.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear progress: %v\n", err)
	}

	cats := make(map[string]store.CategoryStatData, len(res.Categories))
	for name, stat := range res.Categories {
		cats[name] = store.CategoryStatData{Correct: stat.Correct, Total: stat.Total}
	}
	if err := q.results.Append(ctx, store.ResultRecord{
		SessionID:  uuid.New().String(),
		QuizTitle:  q.pack.Title,
		Mode:       string(q.st.Mode),
		Score:      res.Score,
		Total:      res.Total,
		Percent:    res.Percent,
		Categories: cats,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record result: %v\n", err)
	}

	rs := results.New(q.pack, q.st.Mode, res, q.startFactory)
	return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: rs} }
}

// exit saves current progress and returns to a fresh start view without
// finishing the session.
func (q *QuizScreen) exit() (screen.Screen, tea.Cmd) {
	q.saveProgress()
	startScreen := q.startFactory()
	return q, func() tea.Msg { return router.ResetScreenMsg{Screen: startScreen} }
}

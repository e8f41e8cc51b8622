package start

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/router"
	"github.com/varunsridharan/quizdeck/internal/screen"
	"github.com/varunsridharan/quizdeck/internal/screens/quizscreen"
	"github.com/varunsridharan/quizdeck/internal/session"
	"github.com/varunsridharan/quizdeck/internal/store"
	"github.com/varunsridharan/quizdeck/internal/ui/components"
	"github.com/varunsridharan/quizdeck/internal/ui/layout"
)

// StartScreen loads the quiz pack and offers mode selection, start, and
// resume. It owns the loading and error states of the startup flow.
type StartScreen struct {
	dataPath string
	progress store.ProgressRepo
	prefs    store.PrefRepo
	results  store.ResultRepo

	spin    spinner.Model
	loading bool
	errMsg  string

	pack      *quiz.Pack
	saved     *store.ProgressRecord
	mode      session.Mode
	menu      components.Menu
	canResume bool
	notice    string
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen that loads the pack at dataPath.
func New(dataPath string, progress store.ProgressRepo, prefs store.PrefRepo, results store.ResultRepo) *StartScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &StartScreen{
		dataPath: dataPath,
		progress: progress,
		prefs:    prefs,
		results:  results,
		spin:     sp,
		loading:  true,
	}
}

func (s *StartScreen) Init() tea.Cmd {
	return tea.Batch(s.loadPack(), s.spin.Tick)
}

func (s *StartScreen) Title() string {
	return "Start"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.loading:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Mode"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// loadPack reads the quiz pack and the persisted state in one async step.
// Persistence read failures are not load failures: a broken progress row
// just means there is nothing to resume.
func (s *StartScreen) loadPack() tea.Cmd {
	return func() tea.Msg {
		pack, err := quiz.Load(s.dataPath)
		if err != nil {
			return packLoadedMsg{Err: err}
		}

		ctx := context.Background()
		saved, err := s.progress.Load(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: load saved progress: %v\n", err)
			saved = nil
		}
		savedMode, err := s.prefs.Mode(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: load mode preference: %v\n", err)
			savedMode = ""
		}

		return packLoadedMsg{Pack: pack, Saved: saved, SavedMode: savedMode}
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case packLoadedMsg:
		return s.handleLoaded(msg)

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *StartScreen) handleLoaded(msg packLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		// Reported verbatim; retry re-runs the load.
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.pack = msg.Pack
	s.saved = msg.Saved
	s.canResume = session.CanResume(msg.Saved, msg.Pack.Len())
	if mode, err := session.ParseMode(msg.SavedMode); err == nil {
		s.mode = mode
	}
	s.menu = s.buildMenu()
	return s, nil
}

// buildMenu assembles the start menu. The resume entry only exists when the
// saved record matches the loaded pack.
func (s *StartScreen) buildMenu() components.Menu {
	items := []components.MenuItem{
		{
			Label: "Start quiz",
			Action: func() tea.Cmd {
				_, cmd := s.startQuiz()
				return cmd
			},
		},
	}

	if s.canResume {
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("Resume (question %d of %d)", s.saved.Index+1, s.saved.Total),
			Action: func() tea.Cmd {
				_, cmd := s.resumeQuiz()
				return cmd
			},
		})
	}

	return components.NewMenu(items)
}

func (s *StartScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.loading {
		return s, nil
	}

	if s.errMsg != "" {
		if key == "r" || key == "R" {
			s.loading = true
			s.errMsg = ""
			return s, tea.Batch(s.loadPack(), s.spin.Tick)
		}
		return s, nil
	}

	switch key {
	case "left", "h", "p":
		return s, s.selectMode(session.ModePractice)
	case "right", "l", "e":
		return s, s.selectMode(session.ModeExam)
	case "up", "k", "down", "j", "enter":
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

// selectMode records the chosen mode and remembers it across sessions.
func (s *StartScreen) selectMode(mode session.Mode) tea.Cmd {
	s.mode = mode
	s.notice = ""
	if err := s.prefs.SetMode(context.Background(), string(mode)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save mode preference: %v\n", err)
	}
	return nil
}

func (s *StartScreen) startQuiz() (screen.Screen, tea.Cmd) {
	st, err := session.New(s.mode, s.pack.Len())
	if err != nil {
		// Blocking prompt, no state change.
		s.notice = "Select a mode first (←/→)."
		return s, nil
	}

	qs := quizscreen.New(s.pack, st, s.startFactory(), s.progress, s.results)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: qs} }
}

func (s *StartScreen) resumeQuiz() (screen.Screen, tea.Cmd) {
	st, err := session.Resume(s.saved)
	if err != nil {
		// Treated like a stale record: withdraw the affordance.
		s.canResume = false
		s.menu = s.buildMenu()
		return s, nil
	}

	qs := quizscreen.New(s.pack, st, s.startFactory(), s.progress, s.results)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: qs} }
}

// startFactory builds a fresh StartScreen so deeper screens can return to a
// re-loaded start view without importing this package.
func (s *StartScreen) startFactory() func() screen.Screen {
	dataPath, progress, prefs, results := s.dataPath, s.progress, s.prefs, s.results
	return func() screen.Screen {
		return New(dataPath, progress, prefs, results)
	}
}

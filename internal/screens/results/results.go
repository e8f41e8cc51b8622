package results

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/router"
	"github.com/varunsridharan/quizdeck/internal/scoring"
	"github.com/varunsridharan/quizdeck/internal/screen"
	"github.com/varunsridharan/quizdeck/internal/session"
	"github.com/varunsridharan/quizdeck/internal/ui/layout"
	"github.com/varunsridharan/quizdeck/internal/ui/theme"
)

// ResultsScreen displays the final score, the per-category breakdown, and a
// toggleable per-question review list.
type ResultsScreen struct {
	pack         *quiz.Pack
	mode         session.Mode
	result       *scoring.Result
	startFactory func() screen.Screen

	showReview bool
	scroll     int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a scored session.
func New(pack *quiz.Pack, mode session.Mode, result *scoring.Result, startFactory func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		pack:         pack,
		mode:         mode,
		result:       result,
		startFactory: startFactory,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) QuizTitle() string {
	return s.pack.Title
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	reviewHint := "Review answers"
	if s.showReview {
		reviewHint = "Hide review"
	}
	hints := []layout.KeyHint{
		{Key: "R", Description: reviewHint},
	}
	if s.showReview {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Restart"})
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		s.showReview = !s.showReview
		s.scroll = 0

	case "up", "k":
		if s.showReview && s.scroll > 0 {
			s.scroll--
		}

	case "down", "j":
		if s.showReview && s.scroll < len(s.result.Review)-1 {
			s.scroll++
		}

	case "enter", "esc":
		// Only a fresh session from here: the progress record is gone.
		startScreen := s.startFactory()
		return s, func() tea.Msg { return router.ResetScreenMsg{Screen: startScreen} }
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	res := s.result

	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%d%%", res.Percent)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d Correct  ·  %s mode", res.Score, res.Total, s.mode.Label())))
	b.WriteString("\n\n")

	b.WriteString(s.renderCategories(width))

	if s.showReview {
		b.WriteString("\n")
		b.WriteString(s.renderReview(width, height))
	}

	return b.String()
}

// renderCategories renders per-category stats in a stable order.
func (s *ResultsScreen) renderCategories(width int) string {
	names := make([]string, 0, len(s.result.Categories))
	for name := range s.result.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Categories")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for _, name := range names {
		stat := s.result.Categories[name]
		line := fmt.Sprintf("%-20s %d/%d", name, stat.Correct, stat.Total)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderReview renders review records starting at the scroll offset.
func (s *ResultsScreen) renderReview(width, height int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	blockWidth := min(width-8, 70)
	for _, rec := range s.result.Review[s.scroll:] {
		b.WriteString(s.renderReviewRecord(rec, blockWidth, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *ResultsScreen) renderReviewRecord(rec scoring.ReviewRecord, blockWidth, width int) string {
	status := theme.Correct.Render(fmt.Sprintf("Q%d: Correct", rec.QuestionIndex+1))
	if !rec.Correct {
		status = theme.Incorrect.Render(fmt.Sprintf("Q%d: Incorrect", rec.QuestionIndex+1))
	}

	body := status + "\n" +
		theme.Body.Render(rec.Question) + "\n" +
		theme.Body.Render("You: "+rec.UserAnswer) + "\n" +
		theme.Body.Render("Correct: "+rec.CorrectAnswer)
	if rec.Explanation != "" {
		body += "\n" + theme.Hint.Render(rec.Explanation)
	}

	block := lipgloss.NewStyle().
		Width(blockWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(body)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

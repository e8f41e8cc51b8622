package start

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/varunsridharan/quizdeck/internal/session"
	"github.com/varunsridharan/quizdeck/internal/ui/theme"
)

func (s *StartScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.spin.View()+"  Loading quiz...")
	}
	if s.errMsg != "" {
		return s.renderError(width, height)
	}
	return s.renderReady(width, height)
}

func (s *StartScreen) renderError(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Failed to load quiz"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(s.errMsg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press R to retry"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *StartScreen) renderReady(width, height int) string {
	p := s.pack

	var b strings.Builder
	b.WriteString(theme.Title.Render(p.Title))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(theme.Subtitle.Render(p.Description))
		b.WriteString("\n")
	}
	meta := fmt.Sprintf("%d Questions", p.Len())
	if p.Author != "" {
		meta = fmt.Sprintf("by %s  ·  %s", p.Author, meta)
	}
	b.WriteString(theme.Subtitle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString(s.renderModePicker())
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderModePicker renders the two mode variants as a radio row.
func (s *StartScreen) renderModePicker() string {
	render := func(mode session.Mode, hint string) string {
		label := fmt.Sprintf("( ) %s", mode.Label())
		if s.mode == mode {
			label = fmt.Sprintf("(•) %s", mode.Label())
			return theme.Selected.Render(label) + theme.Hint.Render("  "+hint)
		}
		return theme.Unselected.Render(label) + theme.Hint.Render("  "+hint)
	}

	return render(session.ModePractice, "instant feedback") + "\n" +
		render(session.ModeExam, "feedback at the end")
}


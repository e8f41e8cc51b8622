package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/varunsridharan/quizdeck/internal/session"
	"github.com/varunsridharan/quizdeck/internal/ui/components"
	"github.com/varunsridharan/quizdeck/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.confirmSubmit {
		return q.renderConfirmSubmit(width, height)
	}
	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	question := q.current()

	var b strings.Builder

	// Progress line + bar.
	progressText := fmt.Sprintf("Question %d/%d", q.st.Index+1, q.st.Total)
	answeredText := fmt.Sprintf("%d answered", q.st.AnsweredCount())

	infoLeft := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + progressText)
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(answeredText)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(q.st.Index)/float64(q.st.Total), false, width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Category tag.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CategoryTag.Render(question.Category)))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(question.Text))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.opts.View()))

	// Explanation panel, practice mode only, after answering.
	_, answered := q.st.Answer(q.st.Index)
	if answered && q.st.Mode == session.ModePractice && question.Explanation != "" {
		b.WriteString("\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			expStyle.Render(question.Explanation)))
		b.WriteString("\n")
	}

	return b.String()
}

func (q *QuizScreen) renderConfirmSubmit(width, height int) string {
	unanswered := q.st.Total - q.st.AnsweredCount()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Submit with unanswered questions?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d questions have no answer yet.", unanswered, q.st.Total)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Unanswered questions are scored as incorrect."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Submit anyway"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] Keep answering"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

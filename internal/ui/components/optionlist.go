package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/varunsridharan/quizdeck/internal/ui/theme"
)

// optionLabels prefix the four answer options.
var optionLabels = []string{"A", "B", "C", "D"}

// OptionList renders the answer options for one question and tracks the
// cursor. How an answered question is styled depends on the flags:
// with ShowCorrectness set (practice mode) every option gets one of the
// correct / wrong / dimmed states and the list stops reacting to input;
// otherwise (exam mode) only the chosen option is marked as selected.
type OptionList struct {
	Options []string
	Cursor  int

	Answered        bool
	Chosen          int
	CorrectIndex    int
	ShowCorrectness bool
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Locked reports whether the list no longer accepts input.
func (o OptionList) Locked() bool {
	return o.Answered && o.ShowCorrectness
}

// Update handles cursor movement. Selection itself is owned by the screen.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked() {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked() {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)
		s += o.styleFor(i).Render(line) + "\n"
	}
	return s
}

// styleFor picks the style for option i given the answer state.
func (o OptionList) styleFor(i int) lipgloss.Style {
	if o.Answered && o.ShowCorrectness {
		switch {
		case i == o.CorrectIndex:
			return theme.Correct
		case i == o.Chosen:
			return theme.Incorrect
		default:
			return theme.Disabled
		}
	}

	if o.Answered && i == o.Chosen {
		return theme.Selected
	}
	if i == o.Cursor {
		return theme.Selected
	}
	return theme.Unselected
}

package quiz

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// DefaultCategory is assigned to questions that carry no category of their own.
const DefaultCategory = "General"

// Question is a single multiple-choice question. Questions are identified by
// their position in the pack and never change after load.
type Question struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Correct     int      `json:"correctOptionIndex"`
	Category    string   `json:"category,omitempty"`
	Explanation string   `json:"explanation"`
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	return q.Options[q.Correct]
}

// Pack is a loaded quiz document: metadata plus an ordered, read-only
// sequence of questions.
type Pack struct {
	Title       string     `json:"quizTitle"`
	Description string     `json:"quizDescription"`
	Author      string     `json:"quizAuthor"`
	Questions   []Question `json:"questions"`
}

// Len returns the number of questions in the pack.
func (p *Pack) Len() int {
	return len(p.Questions)
}

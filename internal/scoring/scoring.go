package scoring

import (
	"math"

	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/session"
)

// SkippedAnswer is the review text shown for unanswered questions.
const SkippedAnswer = "Skipped"

// CategoryStat tallies correct answers within one category.
type CategoryStat struct {
	Correct int
	Total   int
}

// ReviewRecord summarizes one question after scoring.
type ReviewRecord struct {
	QuestionIndex int
	Question      string
	Correct       bool
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
}

// Result is the outcome of scoring a finished session. It is derived on
// demand and never persisted as-is.
type Result struct {
	Score      int
	Total      int
	Percent    int
	Categories map[string]CategoryStat
	Review     []ReviewRecord
}

// Compute scores a session against its question store in a single pass.
// Unanswered questions count as incorrect and stay in the denominator; their
// review records carry SkippedAnswer as the user answer.
func Compute(questions []quiz.Question, st *session.State) *Result {
	res := &Result{
		Total:      len(questions),
		Categories: make(map[string]CategoryStat),
		Review:     make([]ReviewRecord, 0, len(questions)),
	}

	for i, q := range questions {
		chosen, answered := st.Answer(i)
		correct := answered && chosen == q.Correct
		if correct {
			res.Score++
		}

		cat := q.Category
		if cat == "" {
			cat = quiz.DefaultCategory
		}
		stat := res.Categories[cat]
		stat.Total++
		if correct {
			stat.Correct++
		}
		res.Categories[cat] = stat

		userAnswer := SkippedAnswer
		if answered {
			userAnswer = q.Options[chosen]
		}
		res.Review = append(res.Review, ReviewRecord{
			QuestionIndex: i,
			Question:      q.Text,
			Correct:       correct,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectText(),
			Explanation:   q.Explanation,
		})
	}

	res.Percent = percent(res.Score, res.Total)
	return res
}

// percent returns round(score/total*100) with halves rounding up.
func percent(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

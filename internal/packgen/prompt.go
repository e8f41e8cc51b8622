package packgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author creating multiple-choice quizzes.

Rules:
- Generate the requested number of questions on the given topic.
- Each question has exactly 4 options with exactly one correct answer.
- Distractors should reflect common misconceptions, not random values.
- Question text must be clear, self-contained plain text. No markup.
- Assign each question a short category label; reuse labels across related
  questions so per-category scores are meaningful.
- The explanation states why the correct answer is right in one or two
  sentences.
- Vary the position of the correct option across questions.`

// buildPrompt constructs the user prompt for a generation request.
func buildPrompt(topic string, count int, categories []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)

	if len(categories) > 0 {
		fmt.Fprintf(&b, "Use only these categories: %s\n", strings.Join(categories, ", "))
	}

	return b.String()
}

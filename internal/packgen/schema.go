package packgen

import "github.com/varunsridharan/quizdeck/internal/llm"

// PackSchema defines the JSON schema for LLM pack generation responses.
// It mirrors the quiz pack file format so generated output can be written
// straight to disk.
var PackSchema = &llm.Schema{
	Name:        "quiz-pack",
	Description: "A complete multiple-choice quiz pack",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizTitle": map[string]any{
				"type":        "string",
				"description": "Short title for the quiz",
			},
			"quizDescription": map[string]any{
				"type":        "string",
				"description": "One-sentence description of what the quiz covers",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options. Distractors should be plausible, not random.",
						},
						"correctOptionIndex": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Short topic label for per-category scoring",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining why the correct answer is right",
						},
					},
					"required": []any{"text", "options", "correctOptionIndex", "category", "explanation"},
				},
			},
		},
		"required": []any{"quizTitle", "quizDescription", "questions"},
	},
}

package quiz

// PackSchema defines the JSON Schema every quiz pack document must satisfy.
var PackSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quizTitle": map[string]any{
			"type": "string",
		},
		"quizDescription": map[string]any{
			"type": "string",
		},
		"quizAuthor": map[string]any{
			"type": "string",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": OptionCount,
						"maxItems": OptionCount,
						"items": map[string]any{
							"type": "string",
						},
					},
					"correctOptionIndex": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": OptionCount - 1,
					},
					"category": map[string]any{
						"type": "string",
					},
					"explanation": map[string]any{
						"type": "string",
					},
				},
				"required":             []any{"text", "options", "correctOptionIndex", "explanation"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

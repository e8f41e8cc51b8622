package packgen

import (
	"context"
	"fmt"

	"github.com/varunsridharan/quizdeck/internal/llm"
	"github.com/varunsridharan/quizdeck/internal/quiz"
)

// Config controls pack generation.
type Config struct {
	// MaxTokens caps the LLM response length.
	MaxTokens int

	// Temperature for generation. Higher values vary the questions more.
	Temperature float64
}

// DefaultConfig returns generation defaults sized for packs up to about
// 50 questions.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}

// Input describes what to generate.
type Input struct {
	// Topic is the subject of the quiz.
	Topic string

	// Count is the number of questions to generate.
	Count int

	// Categories restricts category labels when non-empty.
	Categories []string

	// Author is recorded in the generated pack.
	Author string
}

// Generator produces quiz packs from an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces a validated quiz pack. The LLM response is checked
// twice: against the generation schema by the provider, then against the
// pack file schema via quiz.Decode so the result is exactly what Load
// would accept from disk.
func (g *Generator) Generate(ctx context.Context, input Input) (*quiz.Pack, error) {
	if input.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if input.Count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", input.Count)
	}

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(input.Topic, input.Count, input.Categories),
		Schema:      PackSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	pack, err := quiz.Decode(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("generated pack is invalid: %w", err)
	}

	if pack.Len() != input.Count {
		return nil, fmt.Errorf("asked for %d questions, got %d", input.Count, pack.Len())
	}

	if input.Author != "" {
		pack.Author = input.Author
	}

	return pack, nil
}

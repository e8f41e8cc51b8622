package packgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/varunsridharan/quizdeck/internal/llm"
)

func validPackJSON() json.RawMessage {
	return json.RawMessage(`{
		"quizTitle": "Go Basics",
		"quizDescription": "Fundamentals of the Go language",
		"questions": [
			{
				"text": "Which keyword declares a new variable with inferred type?",
				"options": ["var", ":=", "let", "def"],
				"correctOptionIndex": 1,
				"category": "Syntax",
				"explanation": "The := short declaration infers the type from the initializer."
			},
			{
				"text": "What does the go keyword do?",
				"options": ["Imports a package", "Starts a goroutine", "Declares a function", "Runs tests"],
				"correctOptionIndex": 1,
				"category": "Concurrency",
				"explanation": "go starts a new goroutine running the given call."
			}
		]
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPackJSON()})
	gen := New(mock, DefaultConfig())

	pack, err := gen.Generate(context.Background(), Input{
		Topic:  "Go",
		Count:  2,
		Author: "tester",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack.Title != "Go Basics" {
		t.Errorf("unexpected title: %q", pack.Title)
	}
	if pack.Len() != 2 {
		t.Errorf("expected 2 questions, got %d", pack.Len())
	}
	if pack.Author != "tester" {
		t.Errorf("expected author override, got %q", pack.Author)
	}
	if pack.Questions[1].Category != "Concurrency" {
		t.Errorf("unexpected category: %q", pack.Questions[1].Category)
	}
}

func TestGenerate_CountMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPackJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Topic: "Go", Count: 5})
	if err == nil {
		t.Fatal("expected error for count mismatch")
	}
	if !strings.Contains(err.Error(), "asked for 5") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_InvalidPack(t *testing.T) {
	// Three options instead of four fails the pack schema.
	bad := json.RawMessage(`{
		"quizTitle": "Bad",
		"quizDescription": "",
		"questions": [
			{
				"text": "Q?",
				"options": ["a", "b", "c"],
				"correctOptionIndex": 0,
				"category": "X",
				"explanation": "e"
			}
		]
	}`)

	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Topic: "Go", Count: 1})
	if err == nil {
		t.Fatal("expected error for invalid pack")
	}
}

func TestGenerate_InputValidation(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	if _, err := gen.Generate(context.Background(), Input{Count: 3}); err == nil {
		t.Error("expected error for missing topic")
	}
	if _, err := gen.Generate(context.Background(), Input{Topic: "Go", Count: 0}); err == nil {
		t.Error("expected error for zero count")
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPackJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic:      "Go",
		Count:      2,
		Categories: []string{"Syntax", "Concurrency"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !strings.Contains(req.Prompt, "Topic: Go") {
		t.Errorf("prompt missing topic: %q", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Syntax, Concurrency") {
		t.Errorf("prompt missing categories: %q", req.Prompt)
	}
	if req.Schema != PackSchema {
		t.Error("expected pack schema on request")
	}
}

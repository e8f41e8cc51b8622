package quiz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validPack = `{
	"quizTitle": "Go Basics",
	"quizDescription": "Fundamentals of the Go language",
	"quizAuthor": "Test Author",
	"questions": [
		{
			"text": "Which keyword declares a variable?",
			"options": ["var", "let", "def", "dim"],
			"correctOptionIndex": 0,
			"category": "Syntax",
			"explanation": "var declares a variable."
		},
		{
			"text": "What does gofmt do?",
			"options": ["lints", "formats", "compiles", "tests"],
			"correctOptionIndex": 1,
			"explanation": "gofmt formats source code."
		}
	]
}`

func TestDecode_Valid(t *testing.T) {
	p, err := Decode([]byte(validPack))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if p.Title != "Go Basics" || p.Author != "Test Author" {
		t.Errorf("meta = %q by %q", p.Title, p.Author)
	}
	if p.Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Len())
	}
	if p.Questions[0].Category != "Syntax" {
		t.Errorf("category = %q, want Syntax", p.Questions[0].Category)
	}
	// Missing category defaults.
	if p.Questions[1].Category != DefaultCategory {
		t.Errorf("category = %q, want %q", p.Questions[1].Category, DefaultCategory)
	}
	if p.Questions[1].CorrectText() != "formats" {
		t.Errorf("correct text = %q, want formats", p.Questions[1].CorrectText())
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"questions": [`},
		{"missing questions", `{"quizTitle": "t"}`},
		{"questions not array", `{"questions": {"text": "x"}}`},
		{"empty questions", `{"questions": []}`},
		{"three options", `{"questions": [{"text": "q", "options": ["a","b","c"], "correctOptionIndex": 0, "explanation": "e"}]}`},
		{"correct index out of range", `{"questions": [{"text": "q", "options": ["a","b","c","d"], "correctOptionIndex": 4, "explanation": "e"}]}`},
		{"missing explanation", `{"questions": [{"text": "q", "options": ["a","b","c","d"], "correctOptionIndex": 0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.raw)); err == nil {
				t.Error("decode should fail")
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(validPack), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("len = %d, want 2", p.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("load should fail")
	}
	if !strings.Contains(err.Error(), "read quiz pack") {
		t.Errorf("err = %v, want read error", err)
	}
}

package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"count":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer": "42", "count": 3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"missing required", `{"count": 1}`},
		{"wrong type", `{"answer": 42}`},
		{"extra property", `{"answer": "x", "extra": true}`},
		{"minimum violated", `{"answer": "x", "count": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Errorf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

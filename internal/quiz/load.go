package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// packSchema compiles PackSchema once and caches the result.
func packSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(PackSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quiz-pack.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Validate checks a raw quiz pack document against the pack schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := packSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid quiz pack: %w", err)
	}
	return nil
}

// Decode validates raw bytes and unmarshals them into a Pack.
// Questions without a category are assigned DefaultCategory.
func Decode(raw []byte) (*Pack, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var p Pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode quiz pack: %w", err)
	}

	for i := range p.Questions {
		if p.Questions[i].Category == "" {
			p.Questions[i].Category = DefaultCategory
		}
	}

	return &p, nil
}

// Load reads and decodes the quiz pack document at path.
func Load(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz pack: %w", err)
	}
	return Decode(raw)
}

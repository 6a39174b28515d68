package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quizdeck/bank.json"

// bankSchema describes the JSON interchange format.
const bankSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["questions"],
  "additionalProperties": false,
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "choices", "answer"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": ["string", "integer"]},
          "question": {"type": "string", "minLength": 1},
          "choices": {"type": "array", "items": {"type": "string"}},
          "answer": {"type": "integer"},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

type jsonBank struct {
	Questions []jsonQuestion `json:"questions"`
}

type jsonQuestion struct {
	ID          any      `json:"id,omitempty"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// ExportJSON writes b in the JSON interchange format.
func ExportJSON(w io.Writer, b Bank) error {
	out := jsonBank{Questions: make([]jsonQuestion, 0, len(b))}
	for _, q := range b {
		choices := q.Choices
		if choices == nil {
			choices = []string{}
		}
		out.Questions = append(out.Questions, jsonQuestion{
			ID:          q.ID,
			Question:    q.Text,
			Choices:     choices,
			Answer:      q.CorrectIndex,
			Explanation: q.Explanation,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	return nil
}

// LoadJSON validates data against the bank schema and decodes it.
// Questions without an id get their 1-based position.
func LoadJSON(data []byte) (Bank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidFile, err)
	}

	schema, err := bankJSONSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	var in jsonBank
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidFile, err)
	}
	if len(in.Questions) == 0 {
		return nil, ErrNoValidRows
	}

	out := make(Bank, 0, len(in.Questions))
	for i, jq := range in.Questions {
		id := fmt.Sprint(i + 1)
		if jq.ID != nil {
			id = fmt.Sprint(jq.ID)
		}
		out = append(out, Question{
			ID:           id,
			Text:         jq.Question,
			Choices:      jq.Choices,
			CorrectIndex: jq.Answer,
			Explanation:  jq.Explanation,
		})
	}
	return out, nil
}

func bankJSONSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(bankSchema), &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

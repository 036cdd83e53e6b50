package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchemaDef validates a single decoded element: an object whose
// question and answer are non-empty strings.
var recordSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string", "minLength": 1},
		"answer":   map[string]any{"type": "string", "minLength": 1},
		"text":     map[string]any{"type": "string"},
	},
	"required": []any{"question", "answer"},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// recordSchema compiles the record schema once per process.
func recordSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not a
		// Go literal. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(recordSchemaDef)
		if err != nil {
			schemaErr = fmt.Errorf("marshal record schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://qa-record.json", defParsed); err != nil {
			schemaErr = fmt.Errorf("add record schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://qa-record.json")
	})
	return compiledSchema, schemaErr
}

// Parse extracts QA records from raw backend output. It never fails: the
// second return value is false when nothing could be decoded, which
// callers treat as a soft warning rather than an error.
//
// Tier 1 decodes the whole blob as a JSON list. Tier 2 retries on the
// substring between the first '[' and the last ']' inclusive, which
// recovers lists that the model wrapped in conversational prose. The scan
// takes the first '[' and the last ']', never a balanced match.
func Parse(raw string) ([]QARecord, bool) {
	if recs, err := decodeRecords(raw); err == nil {
		return recs, true
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, false
	}

	recs, err := decodeRecords(raw[start : end+1])
	if err != nil {
		return nil, false
	}
	return recs, true
}

// decodeRecords strictly decodes s as a JSON list and keeps the elements
// that satisfy the record schema. A list element with a missing or empty
// question or answer is dropped, not treated as a parse failure.
func decodeRecords(s string) ([]QARecord, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, err
	}

	schema, err := recordSchema()
	if err != nil {
		return nil, err
	}

	recs := make([]QARecord, 0, len(items))
	for _, item := range items {
		var v any
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		if schema.Validate(v) != nil {
			continue
		}
		var rec QARecord
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

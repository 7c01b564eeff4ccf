// Package extract recovers structured data from raw LLM output. Models are
// asked for bare JSON but frequently wrap it in prose or markdown fences, so
// every decode has a salvage path: try the whole reply first, then the
// substring between the first opening and last closing bracket.
package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseError reports model output that could not be resolved to the expected
// JSON shape. Raw holds the original reply verbatim so the caller can show it
// to the user instead of losing it.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return "parse model output: " + e.Reason
}

// Questions resolves raw model output into an ordered list of question
// strings. A JSON array is taken as-is; a JSON object contributes its values
// in declaration order (observed model behavior, kept for compatibility).
// Any other shape fails. Duplicate questions are preserved, and an empty
// array is a valid zero-question result.
func Questions(raw string) ([]string, error) {
	qs, err := decodeQuestions(raw)
	if err == nil {
		return qs, nil
	}

	if sub, ok := bracketed(raw); ok {
		if qs, subErr := decodeQuestions(sub); subErr == nil {
			return qs, nil
		}
	}

	return nil, &ParseError{Raw: raw, Reason: err.Error()}
}

// Object decodes raw model output into v, a pointer to a struct, using the
// same strict-then-salvage strategy as Questions.
func Object(raw string, v any) error {
	trimmed := strings.TrimSpace(raw)
	err := json.Unmarshal([]byte(trimmed), v)
	if err == nil {
		return nil
	}

	if sub, ok := bracketed(raw); ok {
		if subErr := json.Unmarshal([]byte(sub), v); subErr == nil {
			return nil
		}
	}

	return &ParseError{Raw: raw, Reason: err.Error()}
}

// decodeQuestions strictly decodes s as a JSON array of strings or an object
// with string values. Anything after the closing bracket (other than
// whitespace) fails the decode so the salvage path can take over.
func decodeQuestions(s string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(s))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read opening token: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("top-level value is %v, not an array or object", tok)
	}

	qs := []string{}
	switch delim {
	case '[':
		for dec.More() {
			var q string
			if err := dec.Decode(&q); err != nil {
				return nil, fmt.Errorf("array element %d is not a string: %w", len(qs), err)
			}
			qs = append(qs, q)
		}
	case '{':
		// Token-level walk: encoding/json maps would scramble declaration order.
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("read object key: %w", err)
			}
			var q string
			if err := dec.Decode(&q); err != nil {
				return nil, fmt.Errorf("object value %d is not a string: %w", len(qs), err)
			}
			qs = append(qs, q)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read closing token: %w", err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON value: %v", tok)
	}

	return qs, nil
}

// bracketed returns the substring from the first [ or { to the last ] or },
// which is where the JSON usually hides when the model adds wrapper prose.
func bracketed(raw string) (string, bool) {
	start := strings.IndexAny(raw, "[{")
	end := strings.LastIndexAny(raw, "]}")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

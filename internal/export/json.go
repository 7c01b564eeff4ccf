// Package export renders a finished walkthrough into downloadable
// artifacts: a JSON document, and optionally a paginated PDF.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/swapnilm/prepkit/internal/session"
)

// ToJSON renders answers as an indented JSON array of {question, answer}
// objects in submit order. The output round-trips through FromJSON without
// loss.
func ToJSON(answers []session.AnswerRecord) ([]byte, error) {
	if answers == nil {
		answers = []session.AnswerRecord{}
	}
	data, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	return data, nil
}

// FromJSON decodes a document produced by ToJSON.
func FromJSON(data []byte) ([]session.AnswerRecord, error) {
	var answers []session.AnswerRecord
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

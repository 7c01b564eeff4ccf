package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestQuestions_DirectArray(t *testing.T) {
	want := []string{"What is X?", "Explain Y.", "Why Z?"}
	raw, _ := json.Marshal(want)

	got, err := Questions(string(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuestions_WrapperProse(t *testing.T) {
	raw := "Here are the questions:\n[\"What is X?\", \"Explain Y.\"]"

	got, err := Questions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"What is X?", "Explain Y."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuestions_MarkdownFence(t *testing.T) {
	raw := "```json\n[\"Q1\", \"Q2\"]\n```"

	got, err := Questions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Q1", "Q2"}) {
		t.Errorf("got %v", got)
	}
}

func TestQuestions_ObjectValuesInDeclarationOrder(t *testing.T) {
	// Keys deliberately out of lexicographic order: values must come back
	// in declaration order, not key order.
	raw := `{"q2": "second", "q1": "first", "q3": "third"}`

	got, err := Questions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"second", "first", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuestions_EmptyArrayIsValid(t *testing.T) {
	got, err := Questions("[]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected zero questions, got %v", got)
	}
}

func TestQuestions_DuplicatesPreserved(t *testing.T) {
	got, err := Questions(`["same", "same"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"same", "same"}) {
		t.Errorf("got %v", got)
	}
}

func TestQuestions_SurroundingWhitespace(t *testing.T) {
	got, err := Questions("  \n\t [\"Q1\"] \n ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Q1"}) {
		t.Errorf("got %v", got)
	}
}

func TestQuestions_RejectsNonStringElements(t *testing.T) {
	if _, err := Questions(`["Q1", 42]`); err == nil {
		t.Error("expected error for non-string array element")
	}
	if _, err := Questions(`{"a": "Q1", "b": {"nested": "no"}}`); err == nil {
		t.Error("expected error for non-string object value")
	}
}

func TestQuestions_RejectsScalars(t *testing.T) {
	for _, raw := range []string{`"just a string"`, `42`, `true`, `null`} {
		if _, err := Questions(raw); err == nil {
			t.Errorf("expected error for top-level scalar %s", raw)
		}
	}
}

func TestQuestions_ParseErrorPreservesRaw(t *testing.T) {
	raw := "I'm sorry, I can't produce questions for that."

	_, err := Questions(raw)
	if err == nil {
		t.Fatal("expected error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("raw text not preserved: %q", parseErr.Raw)
	}
}

func TestQuestions_BrokenJSONInsideProse(t *testing.T) {
	raw := "Sure: [\"unterminated"

	_, err := Questions(raw)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("raw text not preserved: %q", parseErr.Raw)
	}
}

func TestObject_DirectAndSalvaged(t *testing.T) {
	type posting struct {
		Role   string   `json:"role"`
		Skills []string `json:"skills"`
	}

	var direct posting
	if err := Object(`{"role": "SWE", "skills": ["Go"]}`, &direct); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if direct.Role != "SWE" {
		t.Errorf("got role %q", direct.Role)
	}

	var salvaged posting
	raw := "Here is the extracted posting:\n```json\n{\"role\": \"SRE\", \"skills\": [\"Terraform\"]}\n```\nLet me know!"
	if err := Object(raw, &salvaged); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if salvaged.Role != "SRE" || len(salvaged.Skills) != 1 {
		t.Errorf("got %+v", salvaged)
	}
}

func TestObject_FailureCarriesRaw(t *testing.T) {
	var v struct{}
	raw := "no json here"

	err := Object(raw, &v)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("raw text not preserved: %q", parseErr.Raw)
	}
}

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/swapnilm/prepkit/internal/extract"
	"github.com/swapnilm/prepkit/internal/model"
)

// maxDocRunes caps the text interpolated into a prompt so oversized pages
// and README corpora don't blow the model context window.
const maxDocRunes = 60000

// DefaultQuestionCount is how many interview questions are requested when
// the caller doesn't say otherwise.
const DefaultQuestionCount = 10

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// JobExtractor turns scraped job-page text into a structured JobPosting.
type JobExtractor struct {
	provider Provider
	tmpl     *template.Template
}

// NewJobExtractor creates an extractor using tmpl (normally JobExtractTemplate).
func NewJobExtractor(provider Provider, tmpl *template.Template) *JobExtractor {
	return &JobExtractor{provider: provider, tmpl: tmpl}
}

// Extract asks the model for role/experience/skills/description JSON and
// decodes it, salvaging a bracketed substring when the model adds prose.
func (x *JobExtractor) Extract(ctx context.Context, pageText string) (model.JobPosting, error) {
	var promptBuf bytes.Buffer
	err := x.tmpl.Execute(&promptBuf, struct{ PageText string }{
		PageText: truncateRunes(pageText, maxDocRunes),
	})
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("render job extract prompt: %w", err)
	}

	raw, err := x.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("llm complete: %w", err)
	}

	var posting model.JobPosting
	if err := extract.Object(raw, &posting); err != nil {
		return model.JobPosting{}, fmt.Errorf("job details: %w", err)
	}
	return posting, nil
}

// Summarizer condenses profile pages down to skills and achievements.
type Summarizer struct {
	provider Provider
	tmpl     *template.Template
}

// NewSummarizer creates a summarizer using tmpl (normally SummarizeTemplate).
func NewSummarizer(provider Provider, tmpl *template.Template) *Summarizer {
	return &Summarizer{provider: provider, tmpl: tmpl}
}

// Summarize returns a freeform summary of content.
func (s *Summarizer) Summarize(ctx context.Context, content string) (string, error) {
	var promptBuf bytes.Buffer
	err := s.tmpl.Execute(&promptBuf, struct{ Content string }{
		Content: truncateRunes(content, maxDocRunes),
	})
	if err != nil {
		return "", fmt.Errorf("render summarize prompt: %w", err)
	}

	raw, err := s.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return "", fmt.Errorf("llm complete: %w", err)
	}
	return strings.TrimSpace(raw), nil
}

// EmailInput carries everything the cold-email prompt needs.
type EmailInput struct {
	Job              model.JobPosting
	Candidate        model.Candidate
	LinkedInSummary  string
	PortfolioSummary string
}

// EmailWriter drafts the four-paragraph cold email.
type EmailWriter struct {
	provider Provider
	tmpl     *template.Template
}

// NewEmailWriter creates a writer using tmpl (normally ColdEmailTemplate).
func NewEmailWriter(provider Provider, tmpl *template.Template) *EmailWriter {
	return &EmailWriter{provider: provider, tmpl: tmpl}
}

// Write returns the drafted email as freeform text.
func (w *EmailWriter) Write(ctx context.Context, in EmailInput) (string, error) {
	jobJSON, err := json.Marshal(in.Job)
	if err != nil {
		return "", fmt.Errorf("encode job details: %w", err)
	}

	var promptBuf bytes.Buffer
	err = w.tmpl.Execute(&promptBuf, struct {
		JobDescription   string
		Name             string
		Organization     string
		LinkedInSummary  string
		PortfolioSummary string
	}{
		JobDescription:   string(jobJSON),
		Name:             in.Candidate.Name,
		Organization:     in.Candidate.Organization,
		LinkedInSummary:  in.LinkedInSummary,
		PortfolioSummary: in.PortfolioSummary,
	})
	if err != nil {
		return "", fmt.Errorf("render email prompt: %w", err)
	}

	raw, err := w.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return "", fmt.Errorf("llm complete: %w", err)
	}
	return strings.TrimSpace(raw), nil
}

// QuestionInput carries the interview-question prompt fields. Name and
// Organization are optional; Docs is the README/portfolio corpus.
type QuestionInput struct {
	Name         string
	Organization string
	Docs         string
	Count        int
}

// QuestionGenerator asks the model for interview questions and parses the
// reply into an ordered question list.
type QuestionGenerator struct {
	provider Provider
	tmpl     *template.Template
}

// NewQuestionGenerator creates a generator using tmpl (normally QuestionsTemplate).
func NewQuestionGenerator(provider Provider, tmpl *template.Template) *QuestionGenerator {
	return &QuestionGenerator{provider: provider, tmpl: tmpl}
}

// Generate returns the parsed questions in model order. A reply that cannot
// be resolved to a string list surfaces as *extract.ParseError with the raw
// reply attached.
func (g *QuestionGenerator) Generate(ctx context.Context, in QuestionInput) ([]string, error) {
	if in.Count <= 0 {
		in.Count = DefaultQuestionCount
	}
	in.Docs = truncateRunes(in.Docs, maxDocRunes)

	var promptBuf bytes.Buffer
	if err := g.tmpl.Execute(&promptBuf, in); err != nil {
		return nil, fmt.Errorf("render questions prompt: %w", err)
	}

	raw, err := g.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return nil, fmt.Errorf("llm complete: %w", err)
	}

	return extract.Questions(raw)
}

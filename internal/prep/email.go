package prep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/swapnilm/prepkit/internal/ai"
	"github.com/swapnilm/prepkit/internal/model"
)

// Placeholder summaries used when a profile page is missing or unreachable.
// Profile fetches degrade instead of halting; only the job page is required.
const (
	noLinkedInSummary  = "No LinkedIn data available."
	noPortfolioSummary = "No portfolio provided."
)

// EmailResult is everything one email run produced, so the caller can show
// the intermediate artifacts alongside the final draft.
type EmailResult struct {
	Job              model.JobPosting
	LinkedInSummary  string
	PortfolioSummary string
	Email            string
}

// EmailPipeline scrapes a job posting, extracts its details, summarizes the
// candidate's profile pages, and drafts the cold email.
type EmailPipeline struct {
	pages      TextFetcher
	extractor  JobExtractor
	summarizer Summarizer
	writer     EmailWriter
	logger     *slog.Logger
}

// NewEmailPipeline creates a pipeline wired with all its collaborators.
func NewEmailPipeline(
	pages TextFetcher,
	extractor JobExtractor,
	summarizer Summarizer,
	writer EmailWriter,
	logger *slog.Logger,
) *EmailPipeline {
	return &EmailPipeline{
		pages:      pages,
		extractor:  extractor,
		summarizer: summarizer,
		writer:     writer,
		logger:     logger,
	}
}

// Run executes one request. A failing job-page fetch or extraction halts
// the run; failing LinkedIn/portfolio fetches degrade to placeholders.
func (p *EmailPipeline) Run(ctx context.Context, jobURL string, cand model.Candidate) (EmailResult, error) {
	logger := p.logger.With("run_id", uuid.NewString())

	pageText, err := p.pages.FetchText(ctx, jobURL)
	if err != nil {
		return EmailResult{}, fmt.Errorf("fetch job page: %w", err)
	}

	job, err := p.extractor.Extract(ctx, pageText)
	if err != nil {
		return EmailResult{}, fmt.Errorf("extract job details: %w", err)
	}
	logger.Info("extracted job details", "role", job.Role, "skills", len(job.Skills))

	linkedinSummary := noLinkedInSummary
	if cand.LinkedInURL != "" {
		linkedinSummary = p.summarizePage(ctx, cand.LinkedInURL, noLinkedInSummary, logger)
	}

	portfolioSummary := noPortfolioSummary
	if cand.PortfolioURL != "" {
		portfolioSummary = p.summarizePage(ctx, cand.PortfolioURL, noPortfolioSummary, logger)
	}

	email, err := p.writer.Write(ctx, ai.EmailInput{
		Job:              job,
		Candidate:        cand,
		LinkedInSummary:  linkedinSummary,
		PortfolioSummary: portfolioSummary,
	})
	if err != nil {
		return EmailResult{}, fmt.Errorf("write email: %w", err)
	}

	return EmailResult{
		Job:              job,
		LinkedInSummary:  linkedinSummary,
		PortfolioSummary: portfolioSummary,
		Email:            email,
	}, nil
}

// summarizePage fetches and summarizes one profile page, falling back to
// placeholder when the page or the summary is unavailable.
func (p *EmailPipeline) summarizePage(ctx context.Context, url, placeholder string, logger *slog.Logger) string {
	text, err := p.pages.FetchText(ctx, url)
	if err != nil {
		logger.Warn("profile page unavailable", "url", url, "error", err)
		return placeholder
	}
	if text == "" {
		return placeholder
	}

	summary, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		logger.Warn("profile summary failed", "url", url, "error", err)
		return placeholder
	}
	return summary
}

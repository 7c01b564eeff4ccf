package prep

import (
	"context"

	"github.com/swapnilm/prepkit/internal/ai"
	"github.com/swapnilm/prepkit/internal/model"
)

// RepoLister lists a user's public repositories.
type RepoLister interface {
	ListRepos(ctx context.Context, user string) ([]model.Repo, error)
}

// ReadmeFetcher fetches one repository's README text ("" when absent).
type ReadmeFetcher interface {
	FetchReadme(ctx context.Context, owner, repo string) (string, error)
}

// RepoFilter decides whether a repo's README joins the corpus.
type RepoFilter interface {
	Match(repo model.Repo) bool
}

// TextFetcher fetches a web page as plain text.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// QuestionGenerator produces an ordered interview question list.
type QuestionGenerator interface {
	Generate(ctx context.Context, in ai.QuestionInput) ([]string, error)
}

// JobExtractor turns job-page text into a structured posting.
type JobExtractor interface {
	Extract(ctx context.Context, pageText string) (model.JobPosting, error)
}

// Summarizer condenses page text down to skills and achievements.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// EmailWriter drafts the cold email.
type EmailWriter interface {
	Write(ctx context.Context, in ai.EmailInput) (string, error)
}

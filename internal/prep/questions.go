// Package prep owns the generation pipelines: gather public data, prompt
// the model, and parse the result. Each Run is one user-driven request;
// failures halt the run and are surfaced, never retried.
package prep

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/swapnilm/prepkit/internal/ai"
	"github.com/swapnilm/prepkit/internal/model"
)

// QuestionRequest describes one question-generation run. GitHubUser and
// PortfolioURL are individually optional but at least one must yield text.
type QuestionRequest struct {
	GitHubUser   string
	PortfolioURL string
	Candidate    model.Candidate
	Count        int
}

// QuestionPipeline gathers READMEs and portfolio text into a corpus and
// asks the model for interview questions.
type QuestionPipeline struct {
	lister    RepoLister
	readmes   ReadmeFetcher
	filter    RepoFilter
	pages     TextFetcher
	generator QuestionGenerator
	maxRepos  int
	logger    *slog.Logger
}

// NewQuestionPipeline creates a pipeline wired with all its collaborators.
// maxRepos caps how many matched repos contribute READMEs (0 = no cap).
func NewQuestionPipeline(
	lister RepoLister,
	readmes ReadmeFetcher,
	filter RepoFilter,
	pages TextFetcher,
	generator QuestionGenerator,
	maxRepos int,
	logger *slog.Logger,
) *QuestionPipeline {
	return &QuestionPipeline{
		lister:    lister,
		readmes:   readmes,
		filter:    filter,
		pages:     pages,
		generator: generator,
		maxRepos:  maxRepos,
		logger:    logger,
	}
}

// Run executes one request: list repos, filter, fetch READMEs, add the
// portfolio page, build the corpus, and generate questions. The returned
// slice preserves model order exactly.
func (p *QuestionPipeline) Run(ctx context.Context, req QuestionRequest) ([]string, error) {
	logger := p.logger.With("run_id", uuid.NewString())

	var docs []string

	if req.GitHubUser != "" {
		repos, err := p.lister.ListRepos(ctx, req.GitHubUser)
		if err != nil {
			return nil, fmt.Errorf("list repos for %s: %w", req.GitHubUser, err)
		}
		if len(repos) == 0 {
			return nil, fmt.Errorf("no public repositories found for %s", req.GitHubUser)
		}

		var matched []model.Repo
		for _, repo := range repos {
			if p.filter.Match(repo) {
				matched = append(matched, repo)
			}
		}
		if p.maxRepos > 0 && len(matched) > p.maxRepos {
			matched = matched[:p.maxRepos]
		}

		for _, repo := range matched {
			readme, err := p.readmes.FetchReadme(ctx, req.GitHubUser, repo.Name)
			if err != nil {
				return nil, fmt.Errorf("fetch readme for %s: %w", repo.FullName, err)
			}
			if readme == "" {
				continue
			}
			docs = append(docs, fmt.Sprintf("# %s\n%s", repo.Name, readme))
		}

		logger.Info("gathered github docs",
			"user", req.GitHubUser,
			"repos", len(repos),
			"matched", len(matched),
			"readmes", len(docs),
		)
	}

	if req.PortfolioURL != "" {
		text, err := p.pages.FetchText(ctx, req.PortfolioURL)
		if err != nil {
			return nil, fmt.Errorf("fetch portfolio: %w", err)
		}
		if text != "" {
			docs = append(docs, text)
		}
	}

	corpus := strings.Join(docs, "\n\n")
	if strings.TrimSpace(corpus) == "" {
		return nil, fmt.Errorf("no documentation found to generate questions from")
	}

	questions, err := p.generator.Generate(ctx, ai.QuestionInput{
		Name:         req.Candidate.Name,
		Organization: req.Candidate.Organization,
		Docs:         corpus,
		Count:        req.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	logger.Info("generated questions", "count", len(questions))
	return questions, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swapnilm/prepkit/internal/ai"
	"github.com/swapnilm/prepkit/internal/export"
	"github.com/swapnilm/prepkit/internal/extract"
	"github.com/swapnilm/prepkit/internal/filter"
	"github.com/swapnilm/prepkit/internal/github"
	"github.com/swapnilm/prepkit/internal/model"
	"github.com/swapnilm/prepkit/internal/prep"
	"github.com/swapnilm/prepkit/internal/scrape"
	"github.com/swapnilm/prepkit/internal/session"
	"github.com/swapnilm/prepkit/internal/walkthrough"
)

var (
	questionsGitHubURL    string
	questionsPortfolioURL string
	questionsName         string
	questionsOrg          string
	questionsCount        int
	questionsOutDir       string
	questionsNoPDF        bool
	questionsListOnly     bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions and practice answering them",
	Long: "Gathers READMEs from your GitHub profile (and/or your portfolio page),\n" +
		"asks the LLM for tailored interview questions, then walks you through\n" +
		"answering them one by one. Answers are exported as JSON and PDF.",
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().StringVar(&questionsGitHubURL, "github", "", "GitHub profile URL, e.g. https://github.com/username")
	questionsCmd.Flags().StringVar(&questionsPortfolioURL, "portfolio", "", "portfolio website URL")
	questionsCmd.Flags().StringVar(&questionsName, "name", "", "your name (optional)")
	questionsCmd.Flags().StringVar(&questionsOrg, "org", "", "your university or organization (optional)")
	questionsCmd.Flags().IntVar(&questionsCount, "count", 0, "number of questions (default from config)")
	questionsCmd.Flags().StringVar(&questionsOutDir, "out-dir", ".", "directory for qa.json and qa.pdf")
	questionsCmd.Flags().BoolVar(&questionsNoPDF, "no-pdf", false, "skip the PDF export")
	questionsCmd.Flags().BoolVar(&questionsListOnly, "list", false, "print the questions and exit without the walkthrough")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	githubURL := strings.TrimSpace(questionsGitHubURL)
	portfolioURL := strings.TrimSpace(questionsPortfolioURL)
	if githubURL == "" && portfolioURL == "" {
		return fmt.Errorf("at least one of --github or --portfolio is required")
	}

	var githubUser string
	if githubURL != "" {
		owner, repo, err := github.ParseURL(githubURL)
		if err != nil {
			return err
		}
		if repo != "" {
			return fmt.Errorf("--github expects a profile URL, not a repository URL")
		}
		githubUser = owner
	}

	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	count := questionsCount
	if count <= 0 {
		count = cfg.Questions.Count
	}

	httpClient := newHTTPClient(cfg)
	pipeline := prep.NewQuestionPipeline(
		github.NewClient(cfg.GitHub.Token, httpClient),
		github.NewClient(cfg.GitHub.Token, httpClient),
		filter.NewRepoFilter(
			cfg.GitHub.IncludeKeywords,
			cfg.GitHub.ExcludeKeywords,
			cfg.GitHub.SkipForks,
			cfg.GitHub.SkipArchived,
		),
		scrape.NewPageFetcher(httpClient),
		ai.NewQuestionGenerator(provider, ai.QuestionsTemplate),
		cfg.GitHub.MaxRepos,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("generating questions", "github_user", githubUser, "portfolio", portfolioURL != "")
	questions, err := pipeline.Run(ctx, prep.QuestionRequest{
		GitHubUser:   githubUser,
		PortfolioURL: portfolioURL,
		Candidate: model.Candidate{
			Name:         strings.TrimSpace(questionsName),
			Organization: strings.TrimSpace(questionsOrg),
		},
		Count: count,
	})
	if err != nil {
		// On a parse failure show the raw model reply; it's the only clue
		// the user has about what went wrong.
		var parseErr *extract.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintln(os.Stderr, "Model reply could not be parsed as a question list. Raw reply:")
			fmt.Fprintln(os.Stderr, parseErr.Raw)
		}
		return err
	}

	if len(questions) == 0 {
		fmt.Println("No questions generated.")
		return nil
	}

	if questionsListOnly {
		for i, q := range questions {
			fmt.Printf("%2d. %s\n", i+1, q)
		}
		return nil
	}

	sess := session.New()
	sess.Load(questions)

	result, err := walkthrough.Run(sess)
	if err != nil {
		return err
	}
	if !result.Completed {
		fmt.Printf("Walkthrough ended early: %d of %d questions answered.\n",
			len(result.Answers), sess.Total())
	}
	if len(result.Answers) == 0 {
		fmt.Println("Nothing to export.")
		return nil
	}

	return exportAnswers(result.Answers, questionsOutDir, !questionsNoPDF)
}

// exportAnswers writes qa.json and, unless disabled, qa.pdf. A failed PDF
// render degrades to JSON-only with a warning instead of failing the flow.
func exportAnswers(answers []session.AnswerRecord, outDir string, withPDF bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	jsonData, err := export.ToJSON(answers)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(outDir, "qa.json")
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}
	fmt.Printf("Saved %s\n", jsonPath)

	if !withPDF {
		return nil
	}

	pdfData, err := export.ToPDF(answers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PDF export unavailable (%v); JSON export saved.\n", err)
		return nil
	}
	pdfPath := filepath.Join(outDir, "qa.pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", pdfPath, err)
	}
	fmt.Printf("Saved %s\n", pdfPath)
	return nil
}

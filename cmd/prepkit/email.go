package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swapnilm/prepkit/internal/ai"
	"github.com/swapnilm/prepkit/internal/model"
	"github.com/swapnilm/prepkit/internal/prep"
	"github.com/swapnilm/prepkit/internal/scrape"
)

var (
	emailJobURL    string
	emailName      string
	emailOrg       string
	emailLinkedIn  string
	emailPortfolio string
	emailOutPath   string
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Generate a cold email for a job posting",
	Long: "Scrapes the job posting, extracts its details, summarizes your LinkedIn\n" +
		"and portfolio pages, and drafts a tailored four-paragraph cold email.",
	RunE: runEmail,
}

func init() {
	emailCmd.Flags().StringVar(&emailJobURL, "job-url", "", "job posting URL (required)")
	emailCmd.Flags().StringVar(&emailName, "name", "", "your name (required)")
	emailCmd.Flags().StringVar(&emailOrg, "org", "", "your university or organization (required)")
	emailCmd.Flags().StringVar(&emailLinkedIn, "linkedin", "", "your LinkedIn profile URL (required)")
	emailCmd.Flags().StringVar(&emailPortfolio, "portfolio", "", "portfolio website URL (optional)")
	emailCmd.Flags().StringVarP(&emailOutPath, "out", "o", "", "also write the email to this file")
	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, args []string) error {
	for flag, v := range map[string]string{
		"job-url":  emailJobURL,
		"name":     emailName,
		"org":      emailOrg,
		"linkedin": emailLinkedIn,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("--%s is required", flag)
		}
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

	pages := scrape.NewPageFetcher(newHTTPClient(cfg))
	pipeline := prep.NewEmailPipeline(
		pages,
		ai.NewJobExtractor(provider, ai.JobExtractTemplate),
		ai.NewSummarizer(provider, ai.SummarizeTemplate),
		ai.NewEmailWriter(provider, ai.ColdEmailTemplate),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("scraping job posting", "url", emailJobURL)
	result, err := pipeline.Run(ctx, strings.TrimSpace(emailJobURL), model.Candidate{
		Name:         strings.TrimSpace(emailName),
		Organization: strings.TrimSpace(emailOrg),
		LinkedInURL:  strings.TrimSpace(emailLinkedIn),
		PortfolioURL: strings.TrimSpace(emailPortfolio),
	})
	if err != nil {
		return err
	}

	printEmailResult(result)

	if emailOutPath != "" {
		if err := os.WriteFile(emailOutPath, []byte(result.Email+"\n"), 0o644); err != nil {
			return fmt.Errorf("write email file: %w", err)
		}
		fmt.Printf("Saved to %s\n", emailOutPath)
	}
	return nil
}

func printEmailResult(result prep.EmailResult) {
	divider := strings.Repeat("─", 60)

	fmt.Println(divider)
	fmt.Printf("Role:       %s\n", result.Job.Role)
	fmt.Printf("Experience: %s\n", result.Job.Experience)
	if len(result.Job.Skills) > 0 {
		fmt.Printf("Skills:     %s\n", strings.Join(result.Job.Skills, ", "))
	}
	fmt.Println(divider)
	fmt.Println("LinkedIn summary:")
	fmt.Println(result.LinkedInSummary)
	fmt.Println(divider)
	fmt.Println("Portfolio summary:")
	fmt.Println(result.PortfolioSummary)
	fmt.Println(divider)
	fmt.Println("Cold email:")
	fmt.Println()
	fmt.Println(result.Email)
	fmt.Println(divider)
}

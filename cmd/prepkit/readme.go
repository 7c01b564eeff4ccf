package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swapnilm/prepkit/internal/github"
)

var readmeOutDir string

var readmeCmd = &cobra.Command{
	Use:   "readme <github-url>",
	Short: "Extract READMEs from a GitHub profile or repository",
	Long: "Given a repository URL, prints its README. Given a profile URL, walks\n" +
		"the user's public repositories and prints each README in turn.",
	Args: cobra.ExactArgs(1),
	RunE: runReadme,
}

func init() {
	readmeCmd.Flags().StringVar(&readmeOutDir, "out-dir", "", "save READMEs as files instead of printing them")
	rootCmd.AddCommand(readmeCmd)
}

func runReadme(cmd *cobra.Command, args []string) error {
	owner, repo, err := github.ParseURL(args[0])
	if err != nil {
		return err
	}

	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := github.NewClient(cfg.GitHub.Token, newHTTPClient(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if repo != "" {
		readme, err := client.FetchReadme(ctx, owner, repo)
		if err != nil {
			return err
		}
		if readme == "" {
			return fmt.Errorf("no README found in %s/%s", owner, repo)
		}
		return emitReadme(fmt.Sprintf("%s/%s", owner, repo), repo, readme)
	}

	repos, err := client.ListRepos(ctx, owner)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		return fmt.Errorf("no public repositories found for %s", owner)
	}
	logger.Info("listing readmes", "user", owner, "repos", len(repos))

	found := 0
	for _, r := range repos {
		readme, err := client.FetchReadme(ctx, owner, r.Name)
		if err != nil {
			return err
		}
		if readme == "" {
			continue
		}
		found++
		if err := emitReadme(r.FullName, r.Name, readme); err != nil {
			return err
		}
	}
	if found == 0 {
		return fmt.Errorf("no READMEs found in %s's repositories", owner)
	}
	return nil
}

// emitReadme prints a README to stdout or, with --out-dir, saves it as
// <repo>_README.md.
func emitReadme(title, repoName, readme string) error {
	if readmeOutDir == "" {
		fmt.Printf("%s\n%s\n%s\n\n", title, strings.Repeat("─", len(title)), readme)
		return nil
	}

	if err := os.MkdirAll(readmeOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(readmeOutDir, repoName+"_README.md")
	if err := os.WriteFile(path, []byte(readme), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

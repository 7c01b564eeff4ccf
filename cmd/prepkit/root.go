package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/swapnilm/prepkit/internal/ai"
	"github.com/swapnilm/prepkit/internal/config"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "prepkit",
	Short: "Job application prep: cold emails and interview practice",
	Long: "Prepkit pulls your public profiles and a job posting, then uses an LLM\n" +
		"to draft cold emails and run tailored mock interviews.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: PREPKIT_CONFIG env var or ./prepkit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > PREPKIT_CONFIG env var > "./prepkit.yaml".
// A .env file next to the working directory is applied first, if present.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	if path == "" {
		if env := os.Getenv("PREPKIT_CONFIG"); env != "" {
			path = env
		} else {
			path = "prepkit.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// newHTTPClient returns the shared client for page and API fetches, bounded
// by the configured fixed timeout.
func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

// newProvider builds the OpenAI provider, with its own longer-timeout client.
func newProvider(cfg *config.Config) (ai.Provider, error) {
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not set; export OPENAI_API_KEY or set ai.api_key in the config")
	}
	llmClient := &http.Client{Timeout: cfg.AI.Timeout}
	return ai.NewOpenAIProvider(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, llmClient), nil
}

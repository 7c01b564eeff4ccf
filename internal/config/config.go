// Package config loads the prepkit YAML configuration. Every setting has a
// default, and the file itself is optional: API keys fall back to the
// OPENAI_API_KEY and GITHUB_TOKEN environment variables so the tool works
// with no file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"

	// Fixed bound for every outbound page/API fetch; there is no retry.
	defaultHTTPTimeout = 15 * time.Second
	// LLM calls get a larger budget; completions are slow.
	defaultAITimeout = 60 * time.Second
)

// Config is the root configuration for prepkit.
type Config struct {
	AI          AIConfig
	GitHub      GitHubConfig
	Questions   QuestionsConfig
	HTTPTimeout time.Duration
}

// AIConfig controls the OpenAI-compatible completion endpoint.
type AIConfig struct {
	BaseURL string        // defaults to https://api.openai.com/v1
	Model   string        // model identifier, e.g. "gpt-4o-mini"
	APIKey  string        // expanded from env var by Load
	Timeout time.Duration // per-request timeout
}

// GitHubConfig controls repository listing and the README corpus filter.
type GitHubConfig struct {
	Token           string   // optional personal access token
	MaxRepos        int      // cap on READMEs feeding the corpus (0 = no cap)
	SkipForks       bool
	SkipArchived    bool
	IncludeKeywords []string // repo name/description must contain one (empty = all)
	ExcludeKeywords []string // repo name/description must contain none
}

// QuestionsConfig controls the interview-question request.
type QuestionsConfig struct {
	Count int // how many questions to ask the model for
}

// rawConfig is used for YAML unmarshaling (snake_case, durations as strings).
type rawConfig struct {
	AI        rawAIConfig        `yaml:"ai"`
	GitHub    rawGitHubConfig    `yaml:"github"`
	Questions rawQuestionsConfig `yaml:"questions"`
	HTTP      rawHTTPConfig      `yaml:"http"`
}

type rawAIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

type rawGitHubConfig struct {
	Token           string   `yaml:"token"`
	MaxRepos        *int     `yaml:"max_repos"`
	SkipForks       *bool    `yaml:"skip_forks"`
	SkipArchived    *bool    `yaml:"skip_archived"`
	IncludeKeywords []string `yaml:"include_keywords"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
}

type rawQuestionsConfig struct {
	Count int `yaml:"count"`
}

type rawHTTPConfig struct {
	Timeout string `yaml:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			BaseURL: defaultOpenAIBaseURL,
			Model:   defaultOpenAIModel,
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Timeout: defaultAITimeout,
		},
		GitHub: GitHubConfig{
			Token:        os.Getenv("GITHUB_TOKEN"),
			MaxRepos:     25,
			SkipForks:    true,
			SkipArchived: true,
		},
		Questions:   QuestionsConfig{Count: 10},
		HTTPTimeout: defaultHTTPTimeout,
	}
}

// Load reads and parses the YAML config at path, layering it over Default.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand ${VAR} references so secrets stay out of the file.
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if raw.AI.BaseURL != "" {
		cfg.AI.BaseURL = raw.AI.BaseURL
	}
	if raw.AI.Model != "" {
		cfg.AI.Model = raw.AI.Model
	}
	if raw.AI.APIKey != "" {
		cfg.AI.APIKey = raw.AI.APIKey
	}
	if raw.AI.Timeout != "" {
		d, err := time.ParseDuration(raw.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse ai.timeout %q: %w", raw.AI.Timeout, err)
		}
		cfg.AI.Timeout = d
	}

	if raw.GitHub.Token != "" {
		cfg.GitHub.Token = raw.GitHub.Token
	}
	if raw.GitHub.MaxRepos != nil {
		cfg.GitHub.MaxRepos = *raw.GitHub.MaxRepos
	}
	if raw.GitHub.SkipForks != nil {
		cfg.GitHub.SkipForks = *raw.GitHub.SkipForks
	}
	if raw.GitHub.SkipArchived != nil {
		cfg.GitHub.SkipArchived = *raw.GitHub.SkipArchived
	}
	cfg.GitHub.IncludeKeywords = raw.GitHub.IncludeKeywords
	cfg.GitHub.ExcludeKeywords = raw.GitHub.ExcludeKeywords

	if raw.Questions.Count != 0 {
		cfg.Questions.Count = raw.Questions.Count
	}

	if raw.HTTP.Timeout != "" {
		d, err := time.ParseDuration(raw.HTTP.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse http.timeout %q: %w", raw.HTTP.Timeout, err)
		}
		cfg.HTTPTimeout = d
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPTimeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %v", cfg.HTTPTimeout)
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %v", cfg.AI.Timeout)
	}
	if cfg.Questions.Count < 0 {
		return fmt.Errorf("questions.count must not be negative, got %d", cfg.Questions.Count)
	}
	if cfg.GitHub.MaxRepos < 0 {
		return fmt.Errorf("github.max_repos must not be negative, got %d", cfg.GitHub.MaxRepos)
	}
	return nil
}

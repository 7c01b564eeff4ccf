package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prepkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AI.BaseURL != defaultOpenAIBaseURL {
		t.Errorf("BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Model != defaultOpenAIModel {
		t.Errorf("Model = %q", cfg.AI.Model)
	}
	if cfg.AI.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.AI.APIKey)
	}
	if cfg.GitHub.Token != "env-token" {
		t.Errorf("Token = %q", cfg.GitHub.Token)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.AI.Timeout != defaultAITimeout {
		t.Errorf("AI.Timeout = %v", cfg.AI.Timeout)
	}
	if !cfg.GitHub.SkipForks || !cfg.GitHub.SkipArchived {
		t.Error("fork/archive skipping should default on")
	}
	if cfg.Questions.Count != 10 {
		t.Errorf("Count = %d", cfg.Questions.Count)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
ai:
  base_url: https://llm.internal/v1
  model: my-model
  api_key: file-key
  timeout: 90s
github:
  token: file-token
  max_repos: 5
  skip_forks: false
  include_keywords: [go, cli]
  exclude_keywords: [dotfiles]
questions:
  count: 7
http:
  timeout: 30s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AI.BaseURL != "https://llm.internal/v1" {
		t.Errorf("BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Model != "my-model" {
		t.Errorf("Model = %q", cfg.AI.Model)
	}
	if cfg.AI.APIKey != "file-key" {
		t.Errorf("APIKey = %q", cfg.AI.APIKey)
	}
	if cfg.AI.Timeout != 90*time.Second {
		t.Errorf("AI.Timeout = %v", cfg.AI.Timeout)
	}
	if cfg.GitHub.MaxRepos != 5 {
		t.Errorf("MaxRepos = %d", cfg.GitHub.MaxRepos)
	}
	if cfg.GitHub.SkipForks {
		t.Error("skip_forks: false ignored")
	}
	if !cfg.GitHub.SkipArchived {
		t.Error("skip_archived should keep its default when unset")
	}
	if !reflect.DeepEqual(cfg.GitHub.IncludeKeywords, []string{"go", "cli"}) {
		t.Errorf("IncludeKeywords = %v", cfg.GitHub.IncludeKeywords)
	}
	if !reflect.DeepEqual(cfg.GitHub.ExcludeKeywords, []string{"dotfiles"}) {
		t.Errorf("ExcludeKeywords = %v", cfg.GitHub.ExcludeKeywords)
	}
	if cfg.Questions.Count != 7 {
		t.Errorf("Count = %d", cfg.Questions.Count)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoad_ExpandsEnvReferences(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "expanded-key")
	path := writeConfig(t, `
ai:
  api_key: ${MY_SECRET_KEY}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.APIKey != "expanded-key" {
		t.Errorf("APIKey = %q", cfg.AI.APIKey)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, "http:\n  timeout: soon\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestLoad_NonPositiveTimeoutRejected(t *testing.T) {
	path := writeConfig(t, "http:\n  timeout: 0s\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for zero timeout")
	}
}

func TestLoad_NegativeMaxReposRejected(t *testing.T) {
	path := writeConfig(t, "github:\n  max_repos: -1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative max_repos")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "ai: [not: a mapping\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

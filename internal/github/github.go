// Package github is a minimal adapter for the GitHub REST API: listing a
// user's public repositories and fetching repository READMEs.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/swapnilm/prepkit/internal/model"
)

const (
	apiBaseURL = "https://api.github.com"
	userAgent  = "prepkit/1.0"
)

// repoItem represents a single repository in the GitHub repos listing.
type repoItem struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Fork        bool   `json:"fork"`
	Archived    bool   `json:"archived"`
	PushedAt    string `json:"pushed_at"`
	Stars       int    `json:"stargazers_count"`
}

// readmeResponse is the GET /repos/{owner}/{repo}/readme response.
type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// apiError is the GitHub error body, used for failure messages.
type apiError struct {
	Message string `json:"message"`
}

// Client calls the GitHub REST API. The token is optional; without one the
// unauthenticated rate limit applies and failures are simply surfaced.
type Client struct {
	token  string
	client *http.Client
}

// NewClient creates a GitHub API client. token may be empty.
func NewClient(token string, client *http.Client) *Client {
	return &Client{token: token, client: client}
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request for %s: %w", url, err)
	}
	return resp, nil
}

// ListRepos retrieves up to 100 public repositories for user and normalizes
// them into the Repo model.
func (c *Client) ListRepos(ctx context.Context, user string) ([]model.Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100", apiBaseURL, user)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        fmt.Errorf("%s", readAPIMessage(resp)),
		}
	}

	var items []repoItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode repos for %s: %w", user, err)
	}

	repos := make([]model.Repo, 0, len(items))
	for _, it := range items {
		repo := model.Repo{
			Name:        it.Name,
			FullName:    it.FullName,
			Description: it.Description,
			URL:         it.HTMLURL,
			Fork:        it.Fork,
			Archived:    it.Archived,
			Stars:       it.Stars,
		}
		if it.PushedAt != "" {
			if t, err := time.Parse(time.RFC3339, it.PushedAt); err == nil {
				repo.PushedAt = &t
			}
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

// FetchReadme retrieves the decoded README text for owner/repo. A repo
// without a README yields an empty string, not an error.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", apiBaseURL, owner, repo)

	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", &model.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        fmt.Errorf("%s", readAPIMessage(resp)),
		}
	}

	var rr readmeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", fmt.Errorf("decode readme for %s/%s: %w", owner, repo, err)
	}

	// The API wraps base64 content at 60 columns; strip the newlines before
	// decoding.
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, rr.Content)

	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("decode readme content for %s/%s: %w", owner, repo, err)
	}
	return string(decoded), nil
}

// readAPIMessage extracts the "message" field from a GitHub error body.
func readAPIMessage(resp *http.Response) string {
	var ae apiError
	if err := json.NewDecoder(resp.Body).Decode(&ae); err != nil || ae.Message == "" {
		return "unexpected status"
	}
	return ae.Message
}

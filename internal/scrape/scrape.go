// Package scrape fetches public web pages (job postings, LinkedIn and
// portfolio pages) and reduces them to plain text suitable for prompting.
package scrape

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/swapnilm/prepkit/internal/model"
)

var (
	scriptStyleRegex = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
)

// ExtractText converts an HTML or HTML-encoded string to plain text. It
// drops script and style blocks, unescapes entities, strips all tags, then
// collapses whitespace.
func ExtractText(content string) string {
	withoutCode := scriptStyleRegex.ReplaceAllString(content, " ")
	unescaped := html.UnescapeString(withoutCode)
	plain := htmlTagRegex.ReplaceAllString(unescaped, " ")
	return strings.Join(strings.Fields(plain), " ")
}

// PageFetcher retrieves a page and returns its extracted text.
type PageFetcher struct {
	client *http.Client
}

// NewPageFetcher creates a fetcher using the given client. The client's
// timeout bounds the request; there is no retry.
func NewPageFetcher(client *http.Client) *PageFetcher {
	return &PageFetcher{client: client}
}

// FetchText retrieves url and returns its plain-text content.
func (f *PageFetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "prepkit/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &model.HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	return ExtractText(string(body)), nil
}

package github

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseURL validates a github.com URL and returns its owner and repository
// segments. A profile URL yields an empty repo; extra path segments beyond
// owner/repo (tree, blob, and so on) are ignored.
func ParseURL(raw string) (owner, repo string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse github url %q: %w", raw, err)
	}

	host := strings.TrimSuffix(strings.ToLower(u.Host), "/")
	if host != "github.com" && host != "www.github.com" {
		return "", "", fmt.Errorf("%q is not a github.com URL", raw)
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	switch {
	case len(segments) == 0:
		return "", "", fmt.Errorf("github url %q has no owner", raw)
	case len(segments) == 1:
		return segments[0], "", nil
	default:
		return segments[0], segments[1], nil
	}
}

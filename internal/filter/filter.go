// Package filter decides which repositories feed the README corpus.
package filter

import (
	"strings"

	"github.com/swapnilm/prepkit/internal/model"
)

// RepoFilter matches repositories whose name or description contains any of
// the include keywords and none of the exclude keywords. Matching is
// case-insensitive. An empty include list is treated as "match all". Forks
// and archived repos can be skipped outright.
type RepoFilter struct {
	includeKeywords []string
	excludeKeywords []string
	skipForks       bool
	skipArchived    bool
}

// NewRepoFilter returns a filter over repo name and description keywords.
func NewRepoFilter(includeKeywords, excludeKeywords []string, skipForks, skipArchived bool) *RepoFilter {
	return &RepoFilter{
		includeKeywords: includeKeywords,
		excludeKeywords: excludeKeywords,
		skipForks:       skipForks,
		skipArchived:    skipArchived,
	}
}

// Match returns true if the repo should contribute its README to the corpus.
func (f *RepoFilter) Match(repo model.Repo) bool {
	if f.skipForks && repo.Fork {
		return false
	}
	if f.skipArchived && repo.Archived {
		return false
	}

	haystack := strings.ToLower(repo.Name + " " + repo.Description)

	for _, kw := range f.excludeKeywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return false
		}
	}

	if len(f.includeKeywords) > 0 {
		matched := false
		for _, kw := range f.includeKeywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

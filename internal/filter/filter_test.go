package filter

import (
	"testing"

	"github.com/swapnilm/prepkit/internal/model"
)

func TestMatch_SkipsForksAndArchived(t *testing.T) {
	f := NewRepoFilter(nil, nil, true, true)

	if f.Match(model.Repo{Name: "fork", Fork: true}) {
		t.Error("expected fork to be skipped")
	}
	if f.Match(model.Repo{Name: "old", Archived: true}) {
		t.Error("expected archived repo to be skipped")
	}
	if !f.Match(model.Repo{Name: "active"}) {
		t.Error("expected plain repo to match")
	}
}

func TestMatch_KeepsForksWhenAllowed(t *testing.T) {
	f := NewRepoFilter(nil, nil, false, false)
	if !f.Match(model.Repo{Name: "fork", Fork: true}) {
		t.Error("expected fork to match when skipForks is off")
	}
}

func TestMatch_IncludeKeywords(t *testing.T) {
	f := NewRepoFilter([]string{"go", "cache"}, nil, false, false)

	if !f.Match(model.Repo{Name: "my-Go-service"}) {
		t.Error("expected case-insensitive name match")
	}
	if !f.Match(model.Repo{Name: "proj", Description: "an LRU cache"}) {
		t.Error("expected description match")
	}
	if f.Match(model.Repo{Name: "dotfiles", Description: "shell setup"}) {
		t.Error("expected non-matching repo to be excluded")
	}
}

func TestMatch_ExcludeKeywordsWin(t *testing.T) {
	f := NewRepoFilter([]string{"go"}, []string{"deprecated"}, false, false)

	if f.Match(model.Repo{Name: "go-thing", Description: "DEPRECATED, use v2"}) {
		t.Error("expected exclude keyword to win over include match")
	}
}

func TestMatch_EmptyIncludeMatchesAll(t *testing.T) {
	f := NewRepoFilter(nil, nil, false, false)
	if !f.Match(model.Repo{Name: "anything"}) {
		t.Error("expected empty include list to match all")
	}
}

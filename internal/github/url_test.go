package github

import "testing"

func TestParseURL(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "profile", raw: "https://github.com/jane", wantOwner: "jane"},
		{name: "profile trailing slash", raw: "https://github.com/jane/", wantOwner: "jane"},
		{name: "repository", raw: "https://github.com/jane/cache", wantOwner: "jane", wantRepo: "cache"},
		{name: "www host", raw: "https://www.github.com/jane", wantOwner: "jane"},
		{name: "deep path ignored", raw: "https://github.com/jane/cache/tree/main/pkg", wantOwner: "jane", wantRepo: "cache"},
		{name: "surrounding whitespace", raw: "  https://github.com/jane  ", wantOwner: "jane"},
		{name: "wrong host", raw: "https://gitlab.com/jane", wantErr: true},
		{name: "no owner", raw: "https://github.com/", wantErr: true},
		{name: "not a url", raw: "://broken", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s/%s", owner, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("got %s/%s, want %s/%s", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swapnilm/prepkit/internal/model"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips tags",
			in:   "<html><body><h1>Senior Engineer</h1><p>Remote role</p></body></html>",
			want: "Senior Engineer Remote role",
		},
		{
			name: "unescapes entities",
			in:   "<p>Tools &amp; Infrastructure</p>",
			want: "Tools & Infrastructure",
		},
		{
			name: "drops script and style blocks",
			in:   "<style>body { color: red; }</style><script>var x = 1;</script><p>visible</p>",
			want: "visible",
		},
		{
			name: "collapses whitespace",
			in:   "  several\n\n   words \t here  ",
			want: "several words here",
		},
		{
			name: "plain text passes through",
			in:   "no markup at all",
			want: "no markup at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchText_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Backend role, Go &amp; Postgres</p></body></html>"))
	}))
	defer srv.Close()

	f := NewPageFetcher(srv.Client())
	got, err := f.FetchText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Backend role, Go & Postgres" {
		t.Errorf("got %q", got)
	}
}

func TestFetchText_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewPageFetcher(srv.Client())
	_, err := f.FetchText(context.Background(), srv.URL)

	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *model.HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", httpErr.StatusCode)
	}
}

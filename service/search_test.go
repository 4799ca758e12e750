package service

import (
	"Verity/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchQuery(t *testing.T) {
	cases := []struct {
		claim string
		want  string
	}{
		{"the moon landing was faked by nasa in 1969", "the moon landing was faked fact check"},
		{"water is wet", "water is wet fact check"},
		{"", "fact check"},
		{"  spaced   out   words   here   now   extra  ", "spaced out words here now fact check"},
	}
	for _, c := range cases {
		if got := SearchQuery(c.claim); got != c.want {
			t.Fatalf("SearchQuery(%q) = %q, want %q", c.claim, got, c.want)
		}
	}
}

func TestExtractContext(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "abstract preferred",
			body: `{"AbstractText":"The claim is widely debunked.","Answer":"x"}`,
			want: "The claim is widely debunked.",
		},
		{
			name: "answer fallback",
			body: `{"AbstractText":"","Answer":"42"}`,
			want: "42",
		},
		{
			name: "related topics fallback",
			body: `{"AbstractText":"","RelatedTopics":[{"Text":"first"},{"Text":"second"}]}`,
			want: "first second",
		},
		{
			name: "empty body",
			body: `{}`,
			want: FallbackContext,
		},
	}
	for _, c := range cases {
		if got := ExtractContext([]byte(c.body)); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestContext_NeverFails(t *testing.T) {
	// 服务端 500 也只回兜底文案
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSearchService(&config.Config{Search: &config.SearchConfig{Endpoint: srv.URL}})
	if got := s.Context(context.Background(), "some claim"); got != FallbackContext {
		t.Fatalf("expected fallback, got %q", got)
	}

	// 连不上也一样
	s = NewSearchService(&config.Config{Search: &config.SearchConfig{Endpoint: "http://127.0.0.1:1", TimeoutSeconds: 1}})
	if got := s.Context(context.Background(), "some claim"); got != FallbackContext {
		t.Fatalf("expected fallback on dial error, got %q", got)
	}
}

func TestContext_UsesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"AbstractText":"ok"}`))
	}))
	defer srv.Close()

	s := NewSearchService(&config.Config{Search: &config.SearchConfig{Endpoint: srv.URL}})
	if got := s.Context(context.Background(), "one two three four five six"); got != "ok" {
		t.Fatalf("unexpected context %q", got)
	}
	if gotQuery != "one two three four five fact check" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

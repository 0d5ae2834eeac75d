package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/skillshell/models"
	"github.com/dtnitsch/skillshell/pkg/pages"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	list := []pages.Page{
		{Route: "/", Raw: []byte(`<main><h1>Skills</h1></main>`)},
		{Route: "/about", Raw: []byte("<p>About us</p>\n")},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(New(models.DefaultMetadata(), list, logger))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body error = %v", err)
	}
	return resp, string(body)
}

func TestPages(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"home", "/", http.StatusOK, `<main><h1>Skills</h1></main>`},
		{"about", "/about", http.StatusOK, "<p>About us</p>\n"},
		{"trailing slash", "/about/", http.StatusOK, "<p>About us</p>\n"},
		{"unknown", "/nope", http.StatusNotFound, "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			if !strings.Contains(body, `<body class="antialiased">`+tt.wantBody) && tt.wantStatus == http.StatusOK {
				t.Errorf("body does not contain fragment verbatim: %s", body)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
			if err != nil {
				t.Fatalf("parse error = %v", err)
			}
			if lang, _ := doc.Find("html").Attr("lang"); lang != "en" {
				t.Errorf("lang = %q", lang)
			}
			if color, _ := doc.Find(`meta[name="theme-color"]`).Attr("content"); color != "#FF4444" {
				t.Errorf("theme-color = %q", color)
			}
		})
	}
}

func TestAssetsAndHealth(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
	}{
		{"/favicon.ico", "image/x-icon"},
		{"/globals.css", "text/css; charset=utf-8"},
		{"/healthz", "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if body == "" {
				t.Error("empty body")
			}
		})
	}
}

func TestRouteOf(t *testing.T) {
	tests := map[string]string{
		"":           "/",
		"/":          "/",
		"/about/":    "/about",
		"/docs//a/":  "/docs/a",
		"/../secret": "/secret",
	}
	for in, want := range tests {
		if got := routeOf(in); got != want {
			t.Errorf("routeOf(%q) = %q, want %q", in, got, want)
		}
	}
}

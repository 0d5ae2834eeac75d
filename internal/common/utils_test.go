package common

import (
	"testing"

	"github.com/dtnitsch/skillshell/models"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  https://example.com  ", "https://example.com"},
		{"https://example.com,", "https://example.com"},
		{"[site](https://example.com/a)", "https://example.com/a"},
		{"<https://example.com>", "https://example.com"},
		{"\"https://example.com/index.html\"", "https://example.com/index.html"},
	}
	for _, tt := range tests {
		if got := SanitizeURL(tt.in); got != tt.want {
			t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsHTTPURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/":      true,
		"http://127.0.0.1:8080/x":   true,
		"skillshell-out/index.html": false,
		"/abs/path/index.html":      false,
		"ftp://example.com":         false,
		"https://":                  false,
	}
	for in, want := range tests {
		if got := IsHTTPURL(in); got != want {
			t.Errorf("IsHTTPURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMetadataHash(t *testing.T) {
	a := MetadataHash(models.DefaultMetadata())
	b := MetadataHash(models.DefaultMetadata())
	if a != b {
		t.Error("MetadataHash() is not stable")
	}

	changed := models.DefaultMetadata().Merge(models.PageMetadata{Title: "Other"})
	if MetadataHash(changed) == a {
		t.Error("MetadataHash() did not change with the title")
	}
	if len(a) != 64 {
		t.Errorf("MetadataHash() length = %d, want 64", len(a))
	}
}

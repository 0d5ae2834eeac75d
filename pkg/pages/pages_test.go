package pages

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFragment(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.html", "/"},
		{"about.html", "/about"},
		{"docs/intro.html", "/docs/intro"},
		{"docs/index.html", "/docs"},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := RouteFor(tt.rel); got != tt.want {
				t.Errorf("RouteFor(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	if got, want := OutputPath("out", "/"), filepath.Join("out", "index.html"); got != want {
		t.Errorf("OutputPath(/) = %q, want %q", got, want)
	}
	if got, want := OutputPath("out", "/docs/intro"), filepath.Join("out", "docs", "intro", "index.html"); got != want {
		t.Errorf("OutputPath(/docs/intro) = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "index.html", "<h1>Home</h1>")
	writeFragment(t, dir, "about.html", "<p>About</p>\n")
	writeFragment(t, dir, "docs/intro.html", "<p>Intro</p>")
	writeFragment(t, dir, "notes.txt", "ignored")

	list, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantRoutes := []string{"/", "/about", "/docs/intro"}
	if len(list) != len(wantRoutes) {
		t.Fatalf("Load() returned %d pages, want %d", len(list), len(wantRoutes))
	}
	for i, route := range wantRoutes {
		if list[i].Route != route {
			t.Errorf("page[%d].Route = %q, want %q", i, list[i].Route, route)
		}
	}

	about := Index(list)["/about"]
	if string(about.Raw) != "<p>About</p>\n" {
		t.Errorf("about.Raw = %q", about.Raw)
	}

	var buf bytes.Buffer
	if err := about.Body().Render(&buf); err != nil {
		t.Fatalf("Body().Render() error = %v", err)
	}
	if buf.String() != "<p>About</p>\n" {
		t.Errorf("Body() rendered %q, want fragment bytes unchanged", buf.String())
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Load(missing) expected error")
	}

	file := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(file); err == nil {
		t.Error("Load(file) expected error for non-directory")
	}

	p, err := LoadFile(file)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if p.Route != "/" || string(p.Raw) != "x" {
		t.Errorf("LoadFile() = %+v", p)
	}
}

func TestLoad_DuplicateRoute(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "about.html", "<p>flat</p>")
	writeFragment(t, dir, "about/index.html", "<p>nested</p>")

	_, err := Load(dir)
	if !errors.Is(err, ErrDuplicateRoute) {
		t.Fatalf("Load() error = %v, want ErrDuplicateRoute", err)
	}
	for _, name := range []string{"about.html", filepath.Join("about", "index.html")} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

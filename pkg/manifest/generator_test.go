package manifest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/skillshell/models"
	"github.com/dtnitsch/skillshell/pkg/storage"
)

func TestBuild(t *testing.T) {
	results := []PageResult{
		{Route: "/", FilePath: "out/index.html", SizeBytes: 900, ContentHash: "h1", Language: "en"},
		{Route: "/fr", FilePath: "out/fr/index.html", SizeBytes: 800, ContentHash: "h2", Language: "fr"},
		{Route: "/broken", Error: errors.New("write failed")},
	}

	m := Build(7, "out", models.DefaultMetadata(), results, []string{"favicon.ico"})

	if m.TotalPages != 3 || m.Successful != 2 || m.Failed != 1 {
		t.Errorf("counts = total %d ok %d failed %d", m.TotalPages, m.Successful, m.Failed)
	}
	if m.Pages[0].LanguageNote != "" {
		t.Errorf("english page got note %q", m.Pages[0].LanguageNote)
	}
	if m.Pages[1].LanguageNote == "" {
		t.Error("non-english page should carry a language note")
	}
	if m.Pages[2].Status != "failed" || m.Pages[2].Error != "write failed" || m.Pages[2].FilePath != "" {
		t.Errorf("failed page = %+v", m.Pages[2])
	}
}

func TestWriteRead(t *testing.T) {
	s := &storage.Storage{}
	dir := t.TempDir()

	m := Build(1, dir, models.DefaultMetadata(), []PageResult{{Route: "/", FilePath: filepath.Join(dir, "index.html")}}, nil)
	path, err := Write(m, s)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("Write() path = %q", path)
	}

	got, err := Read(path, s)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.BuildID != 1 || got.TotalPages != 1 {
		t.Errorf("Read() = %+v", got)
	}
	if !got.Metadata.Equal(models.DefaultMetadata()) {
		t.Errorf("metadata did not survive YAML: %+v", got.Metadata)
	}
}

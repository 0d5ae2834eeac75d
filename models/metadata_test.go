package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMetadata(t *testing.T) {
	m := DefaultMetadata()

	if m.Title != "Anoma Skills - Decentralized Skill Exchange" {
		t.Errorf("Title = %q", m.Title)
	}
	wantKeywords := []string{"anoma", "skills", "blockchain", "decentralized", "learning", "teaching", "web3"}
	if len(m.Keywords) != len(wantKeywords) {
		t.Fatalf("len(Keywords) = %d, want %d", len(m.Keywords), len(wantKeywords))
	}
	for i, k := range wantKeywords {
		if m.Keywords[i] != k {
			t.Errorf("Keywords[%d] = %q, want %q", i, m.Keywords[i], k)
		}
	}
	if len(m.Authors) != 1 || m.Authors[0].Name != "Anoma Skills Team" {
		t.Errorf("Authors = %+v", m.Authors)
	}
	if m.Viewport != "width=device-width, initial-scale=1" {
		t.Errorf("Viewport = %q", m.Viewport)
	}
}

func TestDefaultMetadata_CallersCannotMutate(t *testing.T) {
	first := DefaultMetadata()
	first.Title = "changed"
	first.Keywords[0] = "changed"
	first.Authors[0].Name = "changed"

	second := DefaultMetadata()
	if second.Title == "changed" || second.Keywords[0] == "changed" || second.Authors[0].Name == "changed" {
		t.Errorf("mutation leaked into shared record: %+v", second)
	}
	if !second.Equal(DefaultMetadata()) {
		t.Error("consecutive calls returned different records")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultMetadata()

	tests := []struct {
		name     string
		override PageMetadata
		check    func(t *testing.T, got PageMetadata)
	}{
		{
			name:     "empty override keeps defaults",
			override: PageMetadata{},
			check: func(t *testing.T, got PageMetadata) {
				if !got.Equal(base) {
					t.Errorf("got %+v, want defaults", got)
				}
			},
		},
		{
			name:     "title only",
			override: PageMetadata{Title: "  Skills Preview "},
			check: func(t *testing.T, got PageMetadata) {
				if got.Title != "Skills Preview" {
					t.Errorf("Title = %q", got.Title)
				}
				if got.Description != base.Description {
					t.Errorf("Description changed")
				}
			},
		},
		{
			name:     "keywords replace, not append",
			override: PageMetadata{Keywords: []string{"intent"}},
			check: func(t *testing.T, got PageMetadata) {
				if len(got.Keywords) != 1 || got.Keywords[0] != "intent" {
					t.Errorf("Keywords = %v", got.Keywords)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, base.Merge(tt.override))
		})
	}

	if !base.Equal(DefaultMetadata()) {
		t.Error("Merge modified its receiver")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing optional file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "nope.yaml"), false)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.PagesDir != DefaultPagesDir || cfg.Listen != DefaultListen {
			t.Errorf("defaults not applied: %+v", cfg)
		}
		if !cfg.SiteMetadata().Equal(DefaultMetadata()) {
			t.Error("SiteMetadata() should equal defaults")
		}
	})

	t.Run("missing required file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.yaml"), true); err == nil {
			t.Error("LoadConfig() expected error for missing required file")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(dir, "skillshell.yaml")
		content := `
metadata:
  title: Staging Skills
  authors:
    - name: Ops
pages_dir: content
listen: ":9000"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(path, true)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		meta := cfg.SiteMetadata()
		if meta.Title != "Staging Skills" {
			t.Errorf("Title = %q", meta.Title)
		}
		if len(meta.Authors) != 1 || meta.Authors[0].Name != "Ops" {
			t.Errorf("Authors = %+v", meta.Authors)
		}
		if meta.Viewport != DefaultMetadata().Viewport {
			t.Errorf("Viewport = %q, want default", meta.Viewport)
		}
		if cfg.PagesDir != "content" || cfg.Listen != ":9000" || cfg.OutputDir != DefaultOutputDir {
			t.Errorf("paths = %+v", cfg)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("metadata: [unterminated"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path, true); err == nil {
			t.Error("LoadConfig() expected parse error")
		}
	})
}

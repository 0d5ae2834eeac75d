package build

import (
	"path/filepath"
	"testing"

	"github.com/dtnitsch/skillshell/pkg/pages"
)

func loadList(t *testing.T, files map[string]string) []pages.Page {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		writeFragment(t, dir, rel, content)
	}
	list, err := pages.Load(filepath.Clean(dir))
	if err != nil {
		t.Fatalf("pages.Load() error = %v", err)
	}
	return list
}

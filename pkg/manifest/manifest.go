package manifest

import "github.com/dtnitsch/skillshell/models"

// BuildManifest is written to <output_dir>/manifest.yaml after a build.
// It lets a deploy step see what was produced without opening the database.
type BuildManifest struct {
	BuildID     int64               `yaml:"build_id,omitempty"`
	GeneratedAt string              `yaml:"generated_at"`
	OutputDir   string              `yaml:"output_dir"`
	Metadata    models.PageMetadata `yaml:"metadata"`
	TotalPages  int                 `yaml:"total_pages"`
	Successful  int                 `yaml:"successful"`
	Failed      int                 `yaml:"failed"`
	Assets      []string            `yaml:"assets,omitempty"`
	Pages       []PageSummary       `yaml:"pages"`
}

// PageSummary describes one rendered document.
type PageSummary struct {
	Route        string `yaml:"route"`
	FilePath     string `yaml:"file_path,omitempty"`
	Status       string `yaml:"status"` // "success" or "failed"
	Error        string `yaml:"error,omitempty"`
	SizeBytes    int64  `yaml:"size_bytes,omitempty"`
	ContentHash  string `yaml:"content_hash,omitempty"`
	Language     string `yaml:"language,omitempty"`
	LanguageNote string `yaml:"language_note,omitempty"`
}

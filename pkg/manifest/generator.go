package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/skillshell/models"
	"github.com/dtnitsch/skillshell/pkg/storage"
)

const FileName = "manifest.yaml"

// PageResult is the outcome of rendering a single page.
// It is passed in by the build command to avoid circular dependencies.
type PageResult struct {
	Route       string
	FilePath    string
	Error       error
	SizeBytes   int64
	ContentHash string
	Language    string
}

// Build assembles the manifest from page results. Counts are derived from results.
func Build(buildID int64, outputDir string, meta models.PageMetadata, results []PageResult, assets []string) BuildManifest {
	m := BuildManifest{
		BuildID:     buildID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		OutputDir:   outputDir,
		Metadata:    meta.Clone(),
		TotalPages:  len(results),
		Assets:      assets,
	}

	for _, r := range results {
		summary := PageSummary{Route: r.Route}
		if r.Error != nil {
			m.Failed++
			summary.Status = "failed"
			summary.Error = r.Error.Error()
		} else {
			m.Successful++
			summary.Status = "success"
			summary.FilePath = r.FilePath
			summary.SizeBytes = r.SizeBytes
			summary.ContentHash = r.ContentHash
			summary.Language = r.Language
			if r.Language != "" && r.Language != models.Lang {
				summary.LanguageNote = fmt.Sprintf("content detected as %q but document lang is %q", r.Language, models.Lang)
			}
		}
		m.Pages = append(m.Pages, summary)
	}

	return m
}

// Write saves the manifest as YAML under outputDir and returns its path.
func Write(m BuildManifest, s *storage.Storage) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	path := filepath.Join(m.OutputDir, FileName)
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return path, nil
}

// Read loads a manifest written by Write.
func Read(path string, s *storage.Storage) (*BuildManifest, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m BuildManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}
	return &m, nil
}

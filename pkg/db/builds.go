package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrBuildNotFound is returned when a build ID does not exist.
var ErrBuildNotFound = errors.New("build not found")

// Build represents one static build run
type Build struct {
	BuildID      int64
	CreatedAt    time.Time
	OutputDir    string
	PageCount    int
	FailedCount  int
	MetadataHash string
	Duration     time.Duration
}

// BuildPage represents one document written (or attempted) by a build
type BuildPage struct {
	PageID           int64
	BuildID          int64
	Route            string
	SourcePath       string
	FilePath         string
	SizeBytes        int64
	ContentHash      string
	DetectedLanguage string
	Status           string // "success" or "failed"
	Error            string
}

// RecordBuild inserts a build and its pages in a single transaction.
// PageCount and FailedCount are derived from pages.
func (db *DB) RecordBuild(b Build, pages []BuildPage) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	failed := 0
	for _, p := range pages {
		if p.Status != "success" {
			failed++
		}
	}

	result, err := tx.Exec(`
		INSERT INTO builds (output_dir, page_count, failed_count, metadata_hash, duration_ms)
		VALUES (?, ?, ?, ?, ?)
	`, b.OutputDir, len(pages), failed, b.MetadataHash, b.Duration.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("failed to insert build: %w", err)
	}

	buildID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get build ID: %w", err)
	}

	for _, p := range pages {
		_, err := tx.Exec(`
			INSERT INTO build_pages (build_id, route, source_path, file_path, size_bytes,
			                         content_hash, detected_language, status, error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, buildID, p.Route, p.SourcePath, nullString(p.FilePath), p.SizeBytes,
			nullString(p.ContentHash), nullString(p.DetectedLanguage), p.Status, nullString(p.Error))
		if err != nil {
			return 0, fmt.Errorf("failed to insert build page %s: %w", p.Route, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit build: %w", err)
	}

	return buildID, nil
}

// ListBuilds returns the most recent builds first
func (db *DB) ListBuilds(limit int) ([]Build, error) {
	query := `
		SELECT build_id, created_at, output_dir, page_count, failed_count, metadata_hash, duration_ms
		FROM builds
		ORDER BY created_at DESC, build_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}

	return builds, rows.Err()
}

// GetBuildByID returns a single build
func (db *DB) GetBuildByID(buildID int64) (*Build, error) {
	row := db.QueryRow(`
		SELECT build_id, created_at, output_dir, page_count, failed_count, metadata_hash, duration_ms
		FROM builds
		WHERE build_id = ?
	`, buildID)

	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrBuildNotFound, buildID)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBuildPages returns the pages of a build ordered by route
func (db *DB) GetBuildPages(buildID int64) ([]BuildPage, error) {
	rows, err := db.Query(`
		SELECT page_id, build_id, route, COALESCE(source_path, ''), COALESCE(file_path, ''),
		       size_bytes, COALESCE(content_hash, ''), COALESCE(detected_language, ''),
		       status, COALESCE(error, '')
		FROM build_pages
		WHERE build_id = ?
		ORDER BY route
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get build pages: %w", err)
	}
	defer rows.Close()

	var pages []BuildPage
	for rows.Next() {
		var p BuildPage
		if err := rows.Scan(&p.PageID, &p.BuildID, &p.Route, &p.SourcePath, &p.FilePath,
			&p.SizeBytes, &p.ContentHash, &p.DetectedLanguage, &p.Status, &p.Error); err != nil {
			return nil, fmt.Errorf("failed to scan build page: %w", err)
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

// LatestBuildForMetadata returns the newest build rendered with the given metadata hash.
// Returns nil when no such build exists.
func (db *DB) LatestBuildForMetadata(metadataHash string) (*Build, error) {
	row := db.QueryRow(`
		SELECT build_id, created_at, output_dir, page_count, failed_count, metadata_hash, duration_ms
		FROM builds
		WHERE metadata_hash = ?
		ORDER BY created_at DESC, build_id DESC
		LIMIT 1
	`, metadataHash)

	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(s scanner) (Build, error) {
	var b Build
	var durationMS int64
	if err := s.Scan(&b.BuildID, &b.CreatedAt, &b.OutputDir, &b.PageCount,
		&b.FailedCount, &b.MetadataHash, &durationMS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, err
		}
		return b, fmt.Errorf("failed to scan build: %w", err)
	}
	b.Duration = time.Duration(durationMS) * time.Millisecond
	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package build

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/skillshell/internal/common"
	"github.com/dtnitsch/skillshell/pkg/assets"
	"github.com/dtnitsch/skillshell/pkg/db"
	"github.com/dtnitsch/skillshell/pkg/language"
	"github.com/dtnitsch/skillshell/pkg/manifest"
	"github.com/dtnitsch/skillshell/pkg/pages"
	"github.com/dtnitsch/skillshell/pkg/storage"
)

// Options configures a build independently of the CLI.
type Options struct {
	PagesDir      string
	OutputDir     string
	DatabasePath  string
	Workers       int
	CheckLanguage bool
}

// Summary is what a build reports back.
type Summary struct {
	BuildID      int64
	ManifestPath string
	Results      []Result
}

func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	opts := Options{
		PagesDir:      common.StringFlagOr(c, "pages", cfg.PagesDir),
		OutputDir:     common.StringFlagOr(c, "output-dir", cfg.OutputDir),
		DatabasePath:  common.StringFlagOr(c, "db", cfg.Database),
		Workers:       c.Int("workers"),
		CheckLanguage: !c.Bool("skip-language-check"),
	}

	b := NewBuilder(logger, cfg.SiteMetadata())
	summary, err := b.Run(opts)
	if summary != nil {
		fmt.Printf("Build %d: %d pages written to %s\n", summary.BuildID, len(summary.Results), opts.OutputDir)
		fmt.Printf("Manifest: %s\n", summary.ManifestPath)
	}
	return err
}

// Run renders every page, copies assets, records the build and writes the manifest.
// A page failure still records the build; the error is returned afterwards.
func (b *Builder) Run(opts Options) (*Summary, error) {
	start := time.Now()

	list, err := pages.Load(opts.PagesDir)
	if err != nil {
		return nil, err
	}

	database, err := db.Open(opts.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	metaHash := common.MetadataHash(b.meta)
	if prev, err := database.LatestBuildForMetadata(metaHash); err != nil {
		b.logger.Warn("Failed to look up previous build", "error", err)
	} else if prev != nil {
		b.logger.Info("Metadata unchanged since previous build", "build_id", prev.BuildID, "created_at", prev.CreatedAt)
	}

	s := &storage.Storage{}
	r := &renderer{
		logger:    b.logger,
		meta:      b.meta,
		outputDir: opts.OutputDir,
		storage:   s,
	}
	if opts.CheckLanguage {
		r.detector = language.NewDetector()
	}

	results, runErr := r.run(list, opts.Workers)

	assetPaths, err := s.CopyFS(opts.OutputDir, assets.FS())
	if err != nil {
		return nil, fmt.Errorf("failed to copy assets: %w", err)
	}

	buildID, err := database.RecordBuild(db.Build{
		OutputDir:    opts.OutputDir,
		MetadataHash: metaHash,
		Duration:     time.Since(start),
	}, toBuildPages(results))
	if err != nil {
		return nil, fmt.Errorf("failed to record build: %w", err)
	}

	m := manifest.Build(buildID, opts.OutputDir, b.meta, toManifestResults(results), assetPaths)
	manifestPath, err := manifest.Write(m, s)
	if err != nil {
		return nil, err
	}

	b.logger.Info("Build complete", "build_id", buildID, "pages", len(results), "failed", m.Failed, "duration", time.Since(start).String())
	return &Summary{BuildID: buildID, ManifestPath: manifestPath, Results: results}, runErr
}

func toBuildPages(results []Result) []db.BuildPage {
	out := make([]db.BuildPage, len(results))
	for i, r := range results {
		out[i] = db.BuildPage{
			Route:            r.Route,
			SourcePath:       r.SourcePath,
			FilePath:         r.FilePath,
			SizeBytes:        r.SizeBytes,
			ContentHash:      r.ContentHash,
			DetectedLanguage: r.Language,
			Status:           "success",
		}
		if r.Error != nil {
			out[i].Status = "failed"
			out[i].Error = r.Error.Error()
		}
	}
	return out
}

// toManifestResults converts build results to manifest.PageResult.
// This adapter prevents circular dependencies between packages.
func toManifestResults(results []Result) []manifest.PageResult {
	out := make([]manifest.PageResult, len(results))
	for i, r := range results {
		out[i] = manifest.PageResult{
			Route:       r.Route,
			FilePath:    r.FilePath,
			Error:       r.Error,
			SizeBytes:   r.SizeBytes,
			ContentHash: r.ContentHash,
			Language:    r.Language,
		}
	}
	return out
}

package build

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dtnitsch/skillshell/internal/common"
	"github.com/dtnitsch/skillshell/models"
	"github.com/dtnitsch/skillshell/pkg/language"
	"github.com/dtnitsch/skillshell/pkg/pages"
	"github.com/dtnitsch/skillshell/pkg/shell"
	"github.com/dtnitsch/skillshell/pkg/storage"
)

// Job renders a single page.
type Job struct {
	Page pages.Page
}

// Result holds the outcome of a rendered page.
type Result struct {
	Route       string
	SourcePath  string
	FilePath    string
	SizeBytes   int64
	ContentHash string
	Language    string
	Error       error
}

// renderer carries what every worker shares. All fields are read-only during a run.
type renderer struct {
	logger    *slog.Logger
	meta      models.PageMetadata
	outputDir string
	storage   *storage.Storage
	detector  *language.Detector // nil disables language checks
}

// run renders all pages with workerCount workers and returns results sorted by route.
// The returned error is non-nil when any page failed; results are complete either way.
func (r *renderer) run(list []pages.Page, workerCount int) ([]Result, error) {
	if workerCount < 1 {
		workerCount = 1
	}

	r.logger.Info("Starting render phase", "page_count", len(list), "workers", workerCount, "output_dir", r.outputDir)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(list))
	results := make(chan Result, len(list))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go r.worker(w, &wg, jobs, results)
	}

	for _, p := range list {
		jobs <- Job{Page: p}
	}
	close(jobs)

	wg.Wait()
	close(results)
	r.logger.Info("All render workers finished")

	allResults := make([]Result, 0, len(list))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more pages failed")
		}
	}
	sort.Slice(allResults, func(i, j int) bool { return allResults[i].Route < allResults[j].Route })

	return allResults, runErr
}

func (r *renderer) worker(id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		results <- r.render(id, job.Page)
	}
}

func (r *renderer) render(id int, page pages.Page) Result {
	result := Result{Route: page.Route, SourcePath: page.Source}
	r.logger.Debug("Worker started page", "worker_id", id, "route", page.Route)

	doc, err := shell.Bytes(r.meta, page.Body())
	if err != nil {
		r.logger.Error("Error rendering page", "worker_id", id, "route", page.Route, "error", err)
		result.Error = fmt.Errorf("render %s: %w", page.Route, err)
		return result
	}

	fn := pages.OutputPath(r.outputDir, page.Route)
	if err := r.storage.SaveFile(fn, doc); err != nil {
		r.logger.Error("Error saving page", "worker_id", id, "route", page.Route, "file", fn, "error", err)
		result.Error = err
		return result
	}

	result.FilePath = fn
	result.SizeBytes = int64(len(doc))
	result.ContentHash = common.ContentHash(doc)

	if r.detector != nil {
		lang, err := r.detector.DetectHTML(page.Raw)
		if err != nil {
			r.logger.Warn("Language detection failed", "route", page.Route, "error", err)
		}
		result.Language = lang
		if !language.Matches(lang, models.Lang) {
			r.logger.Warn("Page content language differs from document lang",
				"route", page.Route, "detected", lang, "lang", models.Lang)
		}
	}

	r.logger.Info("Worker finished page", "worker_id", id, "route", page.Route, "bytes", result.SizeBytes)
	return result
}

package build

import (
	"log/slog"

	"github.com/dtnitsch/skillshell/models"
)

// Builder renders a pages directory into a static site.
type Builder struct {
	logger *slog.Logger
	meta   models.PageMetadata
}

func NewBuilder(logger *slog.Logger, meta models.PageMetadata) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger, meta: meta.Clone()}
}

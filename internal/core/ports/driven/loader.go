package driven

import (
	"context"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
)

// DatasetLoader reads input sources into a single Dataset.
type DatasetLoader interface {
	// Load parses the given files in order and merges their rows,
	// preserving file order then in-file order. It fails fast: the
	// first error aborts the load and later files are never read.
	// An empty path list is a configuration error.
	Load(ctx context.Context, paths []string) (*domain.Dataset, error)
}

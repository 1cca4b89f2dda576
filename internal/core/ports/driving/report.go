package driving

import (
	"context"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
)

// RunRequest carries the parameters for one report run.
type RunRequest struct {
	// Files are the input CSV paths, in read order. Must be non-empty.
	Files []string

	// Report is the registry name of the report to run.
	Report string

	// Sort selects the output ordering.
	Sort domain.SortKey

	// Limit truncates the sorted rows when non-nil. Zero yields a
	// headers-only table; negative is a configuration error.
	Limit *int

	// Format names the table style.
	Format string

	// Placeholder replaces missing numeric values in the output.
	Placeholder string
}

// ReportRunner executes the full pipeline: load, aggregate, sort,
// render. It returns the formatted table text.
type ReportRunner interface {
	Run(ctx context.Context, req RunRequest) (string, error)
}

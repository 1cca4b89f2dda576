package services

import (
	"context"
	"fmt"

	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driving"
	"github.com/brandstat-labs/brandstat-cli/internal/logger"
)

// Ensure ReportService implements the driving port.
var _ driving.ReportRunner = (*ReportService)(nil)

// ReportService wires the pipeline together: load the dataset, pick
// the report from the registry, run it and render the table. Every
// stage fails fast; the first error aborts the run.
type ReportService struct {
	loader   driven.DatasetLoader
	registry driven.ReportRegistry
	renderer driven.TableRenderer
}

// NewReportService creates the pipeline orchestrator.
func NewReportService(loader driven.DatasetLoader, registry driven.ReportRegistry, renderer driven.TableRenderer) *ReportService {
	return &ReportService{
		loader:   loader,
		registry: registry,
		renderer: renderer,
	}
}

// Run executes one report run and returns the formatted table.
func (s *ReportService) Run(ctx context.Context, req driving.RunRequest) (string, error) {
	// Resolve the report before touching any file so a bad name
	// fails without reading input.
	report, err := s.registry.Get(req.Report)
	if err != nil {
		return "", err
	}

	ds, err := s.loader.Load(ctx, req.Files)
	if err != nil {
		return "", err
	}

	logger.Section("report " + report.Name())
	stop := logger.Timed("report " + report.Name())
	headers, rows, err := report.Run(ds, req.Sort, req.Limit)
	stop()
	if err != nil {
		return "", err
	}

	out, err := s.renderer.Render(headers, rows, driven.RenderOptions{
		Format:      req.Format,
		Placeholder: req.Placeholder,
	})
	if err != nil {
		return "", err
	}

	logger.Debug("rendered %d rows (dataset %s)", len(rows), ds.ID)
	return out, nil
}

// Describe returns a short human-readable summary of a run request.
// Used for verbose diagnostics only.
func Describe(req driving.RunRequest) string {
	limit := "none"
	if req.Limit != nil {
		limit = fmt.Sprintf("%d", *req.Limit)
	}
	return fmt.Sprintf("report=%s sort=%s limit=%s format=%s files=%d",
		req.Report, req.Sort, limit, req.Format, len(req.Files))
}

package reports

import (
	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
	"github.com/brandstat-labs/brandstat-cli/internal/core/services"
)

// AverageRatingName identifies the default report.
const AverageRatingName = "average-rating"

// Ensure AverageRating implements the port.
var _ driven.Report = (*AverageRating)(nil)

// AverageRating reports the average rating and item count per brand.
type AverageRating struct {
	aggregator *services.Aggregator
}

// NewAverageRating creates the report with a default aggregator.
func NewAverageRating() *AverageRating {
	return &AverageRating{aggregator: services.NewAggregator()}
}

// Name returns the registry identifier.
func (r *AverageRating) Name() string {
	return AverageRatingName
}

// Run aggregates per brand, orders by the sort key and truncates to
// limit. Row cells are (brand string, avg *float64, items int); the
// renderer owns numeric formatting and the missing-value placeholder.
func (r *AverageRating) Run(ds *domain.Dataset, key domain.SortKey, limit *int) ([]string, [][]any, error) {
	stats := r.aggregator.BrandAverages(ds)

	ordered, err := services.SortAndLimit(stats, key, limit)
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]any, 0, len(ordered))
	for _, bs := range ordered {
		rows = append(rows, []any{bs.Brand, bs.AvgRating, bs.Items})
	}
	return []string{"brand", "avg_rating", "items"}, rows, nil
}

package services

import (
	"github.com/montanaflynn/stats"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/logger"
)

// Aggregator groups dataset records by normalised brand and computes
// per-brand statistics. It is pure computation: no I/O, no
// formatting, no ordering beyond first-seen brand order.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

type brandAcc struct {
	ratings []float64
	items   int
}

// BrandAverages computes one BrandStats per distinct brand.
//
// Items counts every record of the brand; the average covers only the
// rated subset, summed in dataset order for reproducibility and
// rounded half-up to two decimals. A brand with no rated records gets
// a nil AvgRating. The result is in first-seen brand order; ordering
// for display is the sort stage's job.
func (a *Aggregator) BrandAverages(ds *domain.Dataset) []domain.BrandStats {
	groups := make(map[string]*brandAcc)
	order := make([]string, 0)

	for _, p := range ds.Records {
		acc, ok := groups[p.Brand]
		if !ok {
			acc = &brandAcc{}
			groups[p.Brand] = acc
			order = append(order, p.Brand)
		}
		acc.items++
		if p.Rating != nil {
			acc.ratings = append(acc.ratings, *p.Rating)
		}
	}

	out := make([]domain.BrandStats, 0, len(order))
	for _, brand := range order {
		acc := groups[brand]
		bs := domain.BrandStats{Brand: brand, Items: acc.items}
		if len(acc.ratings) > 0 {
			mean, err := stats.Mean(acc.ratings)
			if err == nil {
				// Round cannot fail on a finite mean of in-range
				// ratings, but keep the unrounded value if it does.
				if rounded, rErr := stats.Round(mean, 2); rErr == nil {
					mean = rounded
				}
				bs.AvgRating = &mean
			}
		}
		out = append(out, bs)
	}

	logger.Debug("aggregated %d records into %d brands (dataset %s)", ds.Len(), len(out), ds.ID)
	return out
}

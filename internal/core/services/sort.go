package services

import (
	"sort"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
)

// SortAndLimit orders aggregated rows by the given key and truncates
// to limit when non-nil.
//
// Directions: brand ascending; avg_rating and items descending. Ties
// break by brand ascending so the order is total and deterministic.
// A nil average sorts after every rated brand regardless of
// direction. A zero limit yields an empty result; a negative limit is
// a configuration error. The input slice is not modified.
func SortAndLimit(rows []domain.BrandStats, key domain.SortKey, limit *int) ([]domain.BrandStats, error) {
	if limit != nil && *limit < 0 {
		return nil, domain.NewConfigError("limit must be >= 0, got %d", *limit)
	}

	ordered := make([]domain.BrandStats, len(rows))
	copy(ordered, rows)

	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j], key)
	})

	if limit != nil && *limit < len(ordered) {
		ordered = ordered[:*limit]
	}
	return ordered, nil
}

func less(a, b domain.BrandStats, key domain.SortKey) bool {
	switch key {
	case domain.SortByItems:
		if a.Items != b.Items {
			return a.Items > b.Items
		}
	case domain.SortByAvgRating:
		switch {
		case a.AvgRating == nil && b.AvgRating == nil:
			// fall through to brand tie-break
		case a.AvgRating == nil:
			return false
		case b.AvgRating == nil:
			return true
		case *a.AvgRating != *b.AvgRating:
			return *a.AvgRating > *b.AvgRating
		}
	}
	return a.Brand < b.Brand
}

package domain

// SortKey selects the column an aggregated table is ordered by.
type SortKey string

const (
	// SortByBrand orders ascending lexicographic.
	SortByBrand SortKey = "brand"

	// SortByAvgRating orders descending, unrated brands last.
	SortByAvgRating SortKey = "avg_rating"

	// SortByItems orders descending by item count.
	SortByItems SortKey = "items"
)

// SortKeys lists the accepted sort key names.
func SortKeys() []string {
	return []string{string(SortByBrand), string(SortByAvgRating), string(SortByItems)}
}

// ParseSortKey validates a user-supplied sort key name.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByBrand, SortByAvgRating, SortByItems:
		return SortKey(s), nil
	}
	return "", NewConfigError("unknown sort key %q (expected one of brand, avg_rating, items)", s)
}

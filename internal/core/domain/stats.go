package domain

// BrandStats is the aggregation output for one normalised brand.
type BrandStats struct {
	// Brand is the normalised brand key, unique per dataset.
	Brand string

	// AvgRating is the mean of the rated subset rounded to two
	// decimals, nil when the brand has no rated records.
	AvgRating *float64

	// Items counts all records for the brand, rated and unrated.
	Items int
}

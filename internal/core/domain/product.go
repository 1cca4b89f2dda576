package domain

// Product is one validated CSV row.
// Price and Rating are nil when the source cell was blank.
type Product struct {
	// Name is the product name, trimmed, never empty.
	Name string

	// Brand is the normalised brand key: trimmed, inner whitespace
	// collapsed, lower-cased. Grouping never re-normalises.
	Brand string

	// Price is the parsed price, nil when absent.
	Price *float64

	// Rating lies in [0, 5] when present, nil when the row is unrated.
	Rating *float64
}

// SourceInfo records where a slice of the dataset came from.
// Used only for diagnostics; aggregation ignores provenance.
type SourceInfo struct {
	// Path is the input file as given on the command line.
	Path string

	// Rows is the number of data rows read from the file.
	Rows int
}

// Dataset is the ordered sequence of all products across all input
// files for one run. Order is file order, then in-file order.
type Dataset struct {
	// ID correlates verbose log lines across pipeline stages.
	ID string

	// Records holds all products in insertion order.
	Records []Product

	// Sources lists the contributing files in read order.
	Sources []SourceInfo
}

// Add appends a single product.
func (d *Dataset) Add(p Product) {
	d.Records = append(d.Records, p)
}

// Len returns the number of products in the dataset.
func (d *Dataset) Len() int {
	return len(d.Records)
}

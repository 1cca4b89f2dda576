package driven

// RenderOptions configures table rendering.
type RenderOptions struct {
	// Format names the table style (github, ascii, grid, rounded, plain).
	Format string

	// Placeholder replaces nil numeric cells. Never empty in
	// practice so absent values cannot be mistaken for zero.
	Placeholder string
}

// TableRenderer formats ordered rows into a textual table.
//
// Cell values may be string, int, float64 or *float64. Floats are
// rendered with exactly two decimals; a nil *float64 renders as the
// placeholder.
type TableRenderer interface {
	// Render produces the final table text. Empty rows yield a
	// valid headers-only table. An unknown format is a
	// configuration error.
	Render(headers []string, rows [][]any, opts RenderOptions) (string, error)
}

package driven

// RunDefaults are user-configured fallbacks for run parameters.
// Zero values mean "not configured"; the caller applies built-in
// defaults after flag and file values.
type RunDefaults struct {
	Report      string
	Sort        string
	Format      string
	Placeholder string
	Limit       *int
}

// ConfigStore supplies persisted run defaults.
type ConfigStore interface {
	// Defaults returns the configured defaults. A missing config
	// file yields the zero value, not an error.
	Defaults() RunDefaults
}

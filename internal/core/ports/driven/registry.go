package driven

import (
	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
)

// Report turns a dataset into an ordered table.
type Report interface {
	// Name is the identifier the registry and CLI use.
	Name() string

	// Run aggregates the dataset, orders rows by the sort key and
	// truncates to limit (nil means no truncation). Cell values
	// follow the TableRenderer contract.
	Run(ds *domain.Dataset, key domain.SortKey, limit *int) (headers []string, rows [][]any, err error)
}

// ReportRegistry resolves report names to implementations.
type ReportRegistry interface {
	// Get returns the report registered under name. Unknown names
	// are a configuration error, not a crash.
	Get(name string) (Report, error)

	// Names returns the registered report names, sorted.
	Names() []string
}

package reports

import (
	"sort"
	"strings"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
)

// Ensure Registry implements the port.
var _ driven.ReportRegistry = (*Registry)(nil)

// FactoryFunc creates a Report instance.
type FactoryFunc func() driven.Report

// Registry maps report names to their factories. It lives for one
// process invocation: defaults are registered at startup and it is
// not mutated while a report runs.
type Registry struct {
	factories map[string]FactoryFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FactoryFunc),
	}
}

// NewDefaultRegistry creates a registry with the built-in reports.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// Built-in names cannot collide; Register only fails on
	// duplicates.
	_ = r.Register(AverageRatingName, func() driven.Report {
		return NewAverageRating()
	})
	return r
}

// Register adds a report factory under name. Names are matched
// case-insensitively. A duplicate name is a configuration error;
// use RegisterOverride to replace on purpose.
func (r *Registry) Register(name string, factory FactoryFunc) error {
	key, err := normalizeName(name)
	if err != nil {
		return err
	}
	if _, exists := r.factories[key]; exists {
		return domain.NewConfigError("report %q already registered", key)
	}
	r.factories[key] = factory
	return nil
}

// RegisterOverride adds a report factory, replacing any existing
// registration under the same name.
func (r *Registry) RegisterOverride(name string, factory FactoryFunc) error {
	key, err := normalizeName(name)
	if err != nil {
		return err
	}
	r.factories[key] = factory
	return nil
}

// Get returns a fresh report instance for name.
func (r *Registry) Get(name string) (driven.Report, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	factory, ok := r.factories[key]
	if !ok {
		return nil, domain.NewConfigError("unknown report %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return factory(), nil
}

// Names returns the registered report names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", domain.NewConfigError("report name must be non-empty")
	}
	return key, nil
}

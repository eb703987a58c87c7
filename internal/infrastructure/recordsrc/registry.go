package recordsrc

import (
	"context"
	"fmt"
	"log/slog"

	"MediaObservatory/internal/domain"
	"MediaObservatory/internal/ports"
)

// Loader reads article records from one file format.
type Loader interface {
	Name() string
	Load(ctx context.Context, path string) ([]domain.ArticleRecord, error)
}

// Registry keeps a mapping from format names to their loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: map[string]Loader{}}
}

// Register adds or replaces a loader implementation.
func (r *Registry) Register(loader Loader) {
	if r.loaders == nil {
		r.loaders = map[string]Loader{}
	}
	r.loaders[loader.Name()] = loader
}

// Resolve returns a loader by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (Loader, error) {
	if loader, ok := r.loaders[name]; ok {
		return loader, nil
	}
	return nil, fmt.Errorf("record format %s is not registered", name)
}

// Source implements ports.RecordSource via a registered format loader.
type Source struct {
	registry *Registry
	format   string
	path     string
	logger   *slog.Logger
}

var _ ports.RecordSource = (*Source)(nil)

// NewSource wires the loader registry with the configured input location.
func NewSource(registry *Registry, format, path string, logger *slog.Logger) *Source {
	return &Source{registry: registry, format: format, path: path, logger: logger}
}

// LoadRecords resolves the configured format and reads the whole collection.
func (s *Source) LoadRecords(ctx context.Context) ([]domain.ArticleRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("record source registry is not configured")
	}

	loader, err := s.registry.Resolve(s.format)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", s.path, err)
	}

	records, err := loader.Load(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("load %s records from %s: %w", s.format, s.path, err)
	}

	if s.logger != nil {
		s.logger.Debug("records loaded", "format", s.format, "path", s.path, "count", len(records))
	}
	return records, nil
}

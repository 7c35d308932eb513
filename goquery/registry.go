// Package goquery provides CSS-selector based site adapters that turn raw
// article markup into plain text, plus the registry that routes sources to
// the adapter able to handle them.
package goquery

import "github.com/fwojciec/jaundice"

var _ jaundice.ExtractorRegistry = (*Registry)(nil)

// Registry maps article sources to extractors. Sources are registered once
// at startup; lookups are read-only afterwards and need no locking.
type Registry struct {
	extractors map[jaundice.Source]jaundice.Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[jaundice.Source]jaundice.Extractor),
	}
}

// ExtractorFor returns the extractor registered for the source.
// Returns an EUNSUPPORTED error when no adapter is registered for it.
func (r *Registry) ExtractorFor(source jaundice.Source) (jaundice.Extractor, error) {
	extractor, ok := r.extractors[source]
	if !ok {
		return nil, jaundice.Errorf(jaundice.EUNSUPPORTED, "no adapter registered for source %q", source)
	}
	return extractor, nil
}

// Register adds an extractor for a source.
// If an extractor is already registered for the source, it is replaced.
func (r *Registry) Register(source jaundice.Source, extractor jaundice.Extractor) {
	r.extractors[source] = extractor
}

// Sources returns all registered sources.
func (r *Registry) Sources() []jaundice.Source {
	sources := make([]jaundice.Source, 0, len(r.extractors))
	for source := range r.extractors {
		sources = append(sources, source)
	}
	return sources
}

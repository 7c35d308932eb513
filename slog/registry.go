package slog

import (
	"log/slog"

	"github.com/fwojciec/jaundice"
)

// Ensure LoggingRegistry implements jaundice.ExtractorRegistry.
var _ jaundice.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with logging of adapter
// lookups, so unsupported sources show up in the logs.
type LoggingRegistry struct {
	next   jaundice.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next jaundice.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// ExtractorFor delegates to the wrapped registry and logs the lookup.
func (r *LoggingRegistry) ExtractorFor(source jaundice.Source) (jaundice.Extractor, error) {
	extractor, err := r.next.ExtractorFor(source)
	r.logger.Info("adapter lookup",
		"source", string(source),
		"supported", err == nil,
	)
	return extractor, err
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(source jaundice.Source, extractor jaundice.Extractor) {
	r.next.Register(source, extractor)
}

// Sources delegates to the wrapped registry.
func (r *LoggingRegistry) Sources() []jaundice.Source {
	return r.next.Sources()
}

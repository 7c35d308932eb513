package jaundice

// Extractor produces plain article text from one site's raw markup.
// Implementations are site-specific: each knows the structural markers of
// the layout it handles. Adding a site means registering a new
// implementation, never changing an existing one.
type Extractor interface {
	// Extract returns the article body as plain text.
	// Returns an EPARSE error when the structural markers the adapter
	// relies on are missing, signaling that the site's markup changed or
	// the page is not an article.
	Extract(html string) (string, error)
}

// ExtractorRegistry maps article sources to the extractor able to handle
// them. Registration happens once at startup; lookups are read-only
// afterwards and safe for concurrent use.
type ExtractorRegistry interface {
	// ExtractorFor returns the extractor registered for the source.
	// Returns an EUNSUPPORTED error when no adapter is registered for it.
	ExtractorFor(source Source) (Extractor, error)

	// Register adds an extractor for a source.
	// If an extractor is already registered for the source, it is replaced.
	Register(source Source, extractor Extractor)

	// Sources returns all registered sources.
	Sources() []Source
}

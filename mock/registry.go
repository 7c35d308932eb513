package mock

import "github.com/fwojciec/jaundice"

var _ jaundice.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of jaundice.ExtractorRegistry.
type ExtractorRegistry struct {
	ExtractorForFn func(source jaundice.Source) (jaundice.Extractor, error)
	RegisterFn     func(source jaundice.Source, extractor jaundice.Extractor)
	SourcesFn      func() []jaundice.Source
}

func (r *ExtractorRegistry) ExtractorFor(source jaundice.Source) (jaundice.Extractor, error) {
	return r.ExtractorForFn(source)
}

func (r *ExtractorRegistry) Register(source jaundice.Source, extractor jaundice.Extractor) {
	r.RegisterFn(source, extractor)
}

func (r *ExtractorRegistry) Sources() []jaundice.Source {
	return r.SourcesFn()
}

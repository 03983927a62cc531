package mock

import "github.com/rmaia/vitrine"

var _ vitrine.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vitrine.Extractor.
type Extractor struct {
	ExtractFn func(sourceURL string, html string) ([]*vitrine.Product, error)
}

func (e *Extractor) Extract(sourceURL string, html string) ([]*vitrine.Product, error) {
	return e.ExtractFn(sourceURL, html)
}

var _ vitrine.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of vitrine.Classifier.
type Classifier struct {
	ClassifyFn func(sourceURL string, html string) vitrine.PageType
}

func (c *Classifier) Classify(sourceURL string, html string) vitrine.PageType {
	return c.ClassifyFn(sourceURL, html)
}

package vitrine

// PageType is the layout category of a storefront page.
type PageType string

// Page types.
const (
	// PageProduct is a single-product detail page.
	PageProduct PageType = "product"

	// PageListing is a category or search results page listing many
	// products.
	PageListing PageType = "listing"
)

// Classifier decides which extraction strategy fits a page.
//
// Classification is a heuristic: a misclassified page degrades to an
// empty result set downstream, never a failure. Implementations must be
// deterministic for identical (url, html) pairs and hold no state
// between calls.
type Classifier interface {
	Classify(sourceURL string, html string) PageType
}

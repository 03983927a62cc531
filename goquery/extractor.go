package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rmaia/vitrine"
)

// Ensure Extractor implements vitrine.Extractor at compile time.
var _ vitrine.Extractor = (*Extractor)(nil)

// Extractor extracts product records from storefront HTML. It is a
// pure function of its inputs: no state is retained between documents
// and concurrent calls never interact.
type Extractor struct {
	profiles  vitrine.ProfileRegistry
	converter vitrine.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter sets the converter applied to inner-HTML locator
// results (rich product descriptions). Without one, HTML results are
// normalized as-is.
func WithConverter(c vitrine.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates an Extractor resolving selector profiles from
// the registry.
func NewExtractor(profiles vitrine.ProfileRegistry, opts ...Option) *Extractor {
	e := &Extractor{profiles: profiles}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the page, classifies it, and runs the matching
// strategy. A page that yields no usable records returns an empty
// slice and a nil error.
func (e *Extractor) Extract(sourceURL string, html string) ([]*vitrine.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vitrine.Errorf(vitrine.EINVALID, "failed to parse HTML: %v", err)
	}

	profile := e.profiles.Get(hostOf(sourceURL))
	base, err := url.Parse(sourceURL)
	if err != nil {
		base = nil
	}

	if classify(sourceURL, doc, profile) == vitrine.PageProduct {
		product := e.extractProduct(sourceURL, base, doc.Selection, profile)
		if product == nil {
			return []*vitrine.Product{}, nil
		}
		return []*vitrine.Product{product}, nil
	}
	return e.extractListing(sourceURL, base, doc, profile), nil
}

// extractProduct assembles one record from a single-product document.
// Returns nil if the name chain resolves nothing.
func (e *Extractor) extractProduct(sourceURL string, base *url.URL, scope *goquery.Selection, profile *vitrine.Profile) *vitrine.Product {
	name := e.field(scope, profile.Product.Name)
	if name == "" {
		return nil
	}

	product := &vitrine.Product{
		Name:        name,
		Price:       vitrine.NormalizePrice(profile.Currency, e.field(scope, profile.Product.Price)),
		Code:        e.field(scope, profile.Product.Code),
		Description: e.field(scope, profile.Product.Description),
		ImageURL:    resolveRef(base, e.field(scope, profile.Product.Image)),
		ProductURL:  resolveRef(base, e.field(scope, profile.Product.Link)),
	}
	if product.ProductURL == "" {
		product.ProductURL = sourceURL
	}
	return product
}

// extractListing enumerates item fragments and extracts one record per
// fragment. Container candidates are tried in priority order; the first
// selector matching at least one fragment wins. Fragments without a
// resolvable name are dropped, and one bad fragment never aborts the
// rest of the listing.
func (e *Extractor) extractListing(sourceURL string, base *url.URL, doc *goquery.Document, profile *vitrine.Profile) []*vitrine.Product {
	var items *goquery.Selection
	for _, container := range profile.ItemContainers {
		if sel := doc.Find(container); sel.Length() > 0 {
			items = sel
			break
		}
	}

	products := []*vitrine.Product{}
	if items == nil {
		return products
	}

	items.Each(func(_ int, frag *goquery.Selection) {
		name := e.field(frag, profile.Listing.Name)
		if name == "" {
			return
		}

		product := &vitrine.Product{
			Name:        name,
			Price:       vitrine.NormalizePrice(profile.Currency, e.field(frag, profile.Listing.Price)),
			Code:        e.field(frag, profile.Listing.Code),
			Description: e.field(frag, profile.Listing.Description),
			ImageURL:    resolveRef(base, e.field(frag, profile.Listing.Image)),
			ProductURL:  resolveRef(base, e.field(frag, profile.Listing.Link)),
		}
		if product.ProductURL == "" {
			// The canonical link is page-global for listings.
			product.ProductURL = sourceURL
		}
		products = append(products, product)
	})
	return products
}

// field resolves a chain to its normalized value; empty when the whole
// chain fails. Inner-HTML results go through the converter; without one,
// or when conversion fails, they degrade to the element's text content.
func (e *Extractor) field(scope *goquery.Selection, chain vitrine.Chain) string {
	sel, loc, ok := locate(scope, chain)
	if !ok {
		return ""
	}

	switch loc.Kind {
	case vitrine.LocatorAttr:
		value, _ := sel.Attr(loc.Attr)
		return vitrine.Normalize(value)
	case vitrine.LocatorHTML:
		if e.converter != nil {
			if html, err := sel.Html(); err == nil {
				if markdown, err := e.converter.Convert(html); err == nil {
					return vitrine.Normalize(markdown)
				}
			}
		}
		return vitrine.Normalize(sel.Text())
	default:
		return vitrine.Normalize(sel.Text())
	}
}
